package extractor

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/vanban-ai/summarizer/internal/domain"
)

// DOCXExtractor reads word/document.xml from the docx archive and walks the
// WordprocessingML token stream: paragraphs become lines and table cells in
// a row are joined with " | ".
type DOCXExtractor struct{}

func NewDOCXExtractor() *DOCXExtractor {
	return &DOCXExtractor{}
}

func (e *DOCXExtractor) Format() domain.DocumentFormat {
	return domain.FormatDOCX
}

func (e *DOCXExtractor) CanExtract(fileName string) bool {
	return hasExtension(fileName, ".docx")
}

func (e *DOCXExtractor) Extract(path string) (string, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open docx archive: %w", err)
	}
	defer archive.Close()

	var document *zip.File
	for _, f := range archive.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return "", fmt.Errorf("docx archive has no word/document.xml")
	}

	rc, err := document.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open word/document.xml: %w", err)
	}
	defer rc.Close()

	return scanDocumentXML(rc)
}

func scanDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var (
		b         strings.Builder
		cellBuf   strings.Builder
		cellTexts []string
		inText    bool
		cellDepth int
	)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode document.xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tc":
				cellDepth++
			case "tab":
				writeTarget(&b, &cellBuf, cellDepth).WriteByte('\t')
			case "br":
				writeTarget(&b, &cellBuf, cellDepth).WriteByte('\n')
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if cellDepth > 0 {
					cellBuf.WriteByte(' ')
				} else {
					b.WriteByte('\n')
				}
			case "tc":
				cellDepth--
				if cellDepth == 0 {
					cellTexts = append(cellTexts, strings.TrimSpace(cellBuf.String()))
					cellBuf.Reset()
				}
			case "tr":
				if len(cellTexts) > 0 {
					b.WriteString(strings.Join(cellTexts, " | "))
					b.WriteByte('\n')
					cellTexts = nil
				}
			}

		case xml.CharData:
			if inText {
				writeTarget(&b, &cellBuf, cellDepth).Write(t)
			}
		}
	}

	return b.String(), nil
}

func writeTarget(body, cell *strings.Builder, cellDepth int) *strings.Builder {
	if cellDepth > 0 {
		return cell
	}
	return body
}
