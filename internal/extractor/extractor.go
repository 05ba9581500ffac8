package extractor

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vanban-ai/summarizer/internal/domain"
)

// SupportedFormats lists the document formats the service accepts.
var SupportedFormats = []domain.DocumentFormat{
	domain.FormatPDF,
	domain.FormatDOCX,
	domain.FormatXLSX,
	domain.FormatTXT,
}

// Extractor turns one document format into plain text.
type Extractor interface {
	Format() domain.DocumentFormat
	CanExtract(fileName string) bool
	Extract(path string) (string, error)
}

// Registry dispatches extraction to per-format extractors.
type Registry struct {
	extractors map[domain.DocumentFormat]Extractor
	order      []domain.DocumentFormat
}

func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[domain.DocumentFormat]Extractor),
		order:      make([]domain.DocumentFormat, 0),
	}
}

// NewDefaultRegistry returns a registry covering all supported formats.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()

	registry.Register(NewPDFExtractor())
	registry.Register(NewDOCXExtractor())
	registry.Register(NewXLSXExtractor())
	registry.Register(NewTXTExtractor())

	return registry
}

func (r *Registry) Register(e Extractor) {
	format := e.Format()
	r.extractors[format] = e
	r.order = append(r.order, format)
}

// Detect resolves an extractor from the file name extension.
func (r *Registry) Detect(fileName string) (Extractor, error) {
	for _, format := range r.order {
		e := r.extractors[format]
		if e.CanExtract(fileName) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (supported: %s)", domain.ErrUnsupportedFormat, fileName, formatNames())
}

// Get resolves an extractor for a declared format.
func (r *Registry) Get(format domain.DocumentFormat) (Extractor, error) {
	if e, ok := r.extractors[format]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q (supported: %s)", domain.ErrUnsupportedFormat, format, formatNames())
}

// Extract reads the document at path as the declared format. Parse failures
// and documents with no extractable text surface as extraction errors; there
// are no retries.
func (r *Registry) Extract(path string, format domain.DocumentFormat) (domain.ExtractedDocument, error) {
	e, err := r.Get(format)
	if err != nil {
		return domain.ExtractedDocument{}, err
	}

	text, err := e.Extract(path)
	if err != nil {
		return domain.ExtractedDocument{}, fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ExtractedDocument{}, fmt.Errorf("%w: document has no extractable text", domain.ErrExtraction)
	}

	return domain.ExtractedDocument{
		Text:         text,
		SourceFormat: e.Format(),
		Length:       utf8.RuneCountInString(text),
	}, nil
}

func formatNames() string {
	names := make([]string, len(SupportedFormats))
	for i, f := range SupportedFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func hasExtension(fileName string, extensions ...string) bool {
	fileNameLower := strings.ToLower(fileName)
	for _, ext := range extensions {
		if strings.HasSuffix(fileNameLower, ext) {
			return true
		}
	}
	return false
}
