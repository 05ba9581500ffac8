package domain

// DocumentFormat is the declared format of an uploaded document.
type DocumentFormat string

const (
	FormatPDF  DocumentFormat = "pdf"
	FormatDOCX DocumentFormat = "docx"
	FormatXLSX DocumentFormat = "xlsx"
	FormatTXT  DocumentFormat = "txt"
)

// ExtractedDocument is the plain-text content of one uploaded document.
// It lives only for the duration of a single request.
type ExtractedDocument struct {
	Text         string
	SourceFormat DocumentFormat
	// Length is the text length in runes.
	Length int
}

// ClassificationResult is the outcome of classifying one question.
type ClassificationResult struct {
	Intent          Intent
	MatchedPatterns []string
	// Confidence is the matched fraction of the winning intent's patterns,
	// in [0,1]. Zero means the fallback intent was used.
	Confidence float64
}

// FormattedAnswer is a provider answer after structural post-processing.
type FormattedAnswer struct {
	Text          string
	StructureType string
	// HasTables reports whether the answer actually contains table rows;
	// missing structure is recorded, never synthesized.
	HasTables bool
	// Sections is the expected section count range from the intent template.
	Sections string
}
