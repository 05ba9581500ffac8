package extractor

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vanban-ai/summarizer/internal/domain"
)

// XLSXExtractor renders every sheet of a workbook as pipe-separated rows,
// each sheet prefixed with a separator line.
type XLSXExtractor struct{}

func NewXLSXExtractor() *XLSXExtractor {
	return &XLSXExtractor{}
}

func (e *XLSXExtractor) Format() domain.DocumentFormat {
	return domain.FormatXLSX
}

func (e *XLSXExtractor) CanExtract(fileName string) bool {
	return hasExtension(fileName, ".xlsx", ".xls")
}

func (e *XLSXExtractor) Extract(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	var b strings.Builder
	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return "", fmt.Errorf("failed to read sheet %q: %w", sheet, err)
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "=== Sheet: %s ===\n", sheet)

		for _, row := range rows {
			cells := make([]string, len(row))
			empty := true
			for i, cell := range row {
				cells[i] = strings.TrimSpace(cell)
				if cells[i] != "" {
					empty = false
				}
			}
			if empty {
				continue
			}
			b.WriteString(strings.Join(cells, " | "))
			b.WriteByte('\n')
		}
	}

	return b.String(), nil
}
