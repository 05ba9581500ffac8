package extractor

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/vanban-ai/summarizer/internal/domain"
)

// TXTExtractor reads plain-text files. Files that are not valid UTF-8 are
// decoded as ISO-8859-1.
type TXTExtractor struct{}

func NewTXTExtractor() *TXTExtractor {
	return &TXTExtractor{}
}

func (e *TXTExtractor) Format() domain.DocumentFormat {
	return domain.FormatTXT
}

func (e *TXTExtractor) CanExtract(fileName string) bool {
	return hasExtension(fileName, ".txt")
}

func (e *TXTExtractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	if !utf8.Valid(data) {
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("failed to decode file: %w", err)
		}
		data = decoded
	}

	return string(data), nil
}
