package extractor

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/vanban-ai/summarizer/internal/domain"
)

// PDFExtractor extracts text from PDF files, one page at a time.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) Format() domain.DocumentFormat {
	return domain.FormatPDF
}

func (e *PDFExtractor) CanExtract(fileName string) bool {
	return hasExtension(fileName, ".pdf")
}

func (e *PDFExtractor) Extract(path string) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	totalPages := reader.NumPage()
	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", i, err)
		}

		pageText = strings.TrimSpace(pageText)
		if pageText == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(pageText)
	}

	return b.String(), nil
}
