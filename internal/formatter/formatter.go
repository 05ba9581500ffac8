package formatter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vanban-ai/summarizer/internal/domain"
)

// Formatter post-processes raw provider answers into the shape the intent's
// output template expects. It normalizes spacing around structural markers
// and reports which markers are actually present; it never synthesizes
// missing structure. Every pass is idempotent.
type Formatter struct{}

func New() *Formatter {
	return &Formatter{}
}

var (
	headingRe    = regexp.MustCompile(`^#+\s`)
	sectionRe    = regexp.MustCompile(`^[IVX]+\.\s`)
	tableRowRe   = regexp.MustCompile(`^\|.*\|`)
	numberedRe   = regexp.MustCompile(`^\d+\.\s`)
	bulletPrefix = []string{"- ", "* ", "+ "}
)

// Format cleans the raw answer and attaches structure metadata from the
// intent's template. Fails only when the raw answer is empty or
// whitespace-only.
func (f *Formatter) Format(intent domain.Intent, rawAnswer string) (domain.FormattedAnswer, error) {
	if strings.TrimSpace(rawAnswer) == "" {
		return domain.FormattedAnswer{}, fmt.Errorf("%w: nothing to format", domain.ErrEmptyAnswer)
	}

	text := cleanText(rawAnswer)
	if intent.Template.ExpectTables {
		text = spaceTableBlocks(text)
	} else {
		text = spaceSectionHeadings(text)
	}

	return domain.FormattedAnswer{
		Text:          text,
		StructureType: intent.Template.StructureType,
		HasTables:     hasTableRows(text),
		Sections:      intent.Template.Sections,
	}, nil
}

// cleanText strips trailing whitespace per line, collapses runs of blank
// lines to a single one, and guarantees a blank line after markdown
// headings.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(s, "\n")

	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimRight(line, " \t")
	}

	var out []string
	for i, line := range trimmed {
		if line == "" {
			if len(out) == 0 || out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, line)
		if headingRe.MatchString(line) && i+1 < len(trimmed) && trimmed[i+1] != "" {
			out = append(out, "")
		}
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}

	return strings.Join(out, "\n")
}

// spaceTableBlocks ensures a blank line before and after each contiguous
// run of markdown table rows.
func spaceTableBlocks(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	for i, line := range lines {
		isRow := tableRowRe.MatchString(line)
		if isRow && len(out) > 0 && out[len(out)-1] != "" && !tableRowRe.MatchString(out[len(out)-1]) {
			out = append(out, "")
		}
		out = append(out, line)
		if isRow && i+1 < len(lines) && lines[i+1] != "" && !tableRowRe.MatchString(lines[i+1]) {
			out = append(out, "")
		}
	}
	return strings.Join(out, "\n")
}

// spaceSectionHeadings ensures a blank line before Roman-numeral section
// headings (I., II., ...).
func spaceSectionHeadings(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	for _, line := range lines {
		if sectionRe.MatchString(line) && len(out) > 0 && out[len(out)-1] != "" {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

func hasTableRows(s string) bool {
	for _, line := range strings.Split(s, "\n") {
		if tableRowRe.MatchString(line) {
			return true
		}
	}
	return false
}

// DetectStructure summarizes which structural markers an answer carries.
// Used for logging; the response metadata only exposes table presence.
func DetectStructure(s string) (tables, sections, bullets bool) {
	for _, line := range strings.Split(s, "\n") {
		if tableRowRe.MatchString(line) {
			tables = true
		}
		if sectionRe.MatchString(line) || numberedRe.MatchString(line) || headingRe.MatchString(line) {
			sections = true
		}
		for _, prefix := range bulletPrefix {
			if strings.HasPrefix(line, prefix) {
				bullets = true
			}
		}
	}
	return tables, sections, bullets
}
