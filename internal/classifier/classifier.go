package classifier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/vanban-ai/summarizer/internal/domain"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Classifier maps free-form Vietnamese questions onto the intent taxonomy
// by counting distinct pattern matches per intent. It is read-only after
// construction and safe for concurrent use.
type Classifier struct {
	intents []compiledIntent
	byID    map[domain.IntentID]domain.Intent
}

type compiledIntent struct {
	intent   domain.Intent
	patterns []compiledPattern
}

type compiledPattern struct {
	raw string

	// literal form (nil regexps) or regex form (empty literals)
	literal       string
	foldedLiteral string
	re            *regexp.Regexp
	foldedRe      *regexp.Regexp
}

// New compiles the intent table. The first intent is the fallback used when
// nothing matches. Every intent must declare at least one pattern and no
// pattern may appear under two intents.
func New(intents []domain.Intent) (*Classifier, error) {
	if len(intents) == 0 {
		return nil, fmt.Errorf("intent table is empty")
	}

	seen := make(map[string]domain.IntentID)
	compiled := make([]compiledIntent, 0, len(intents))
	byID := make(map[domain.IntentID]domain.Intent, len(intents))

	for _, intent := range intents {
		if len(intent.Patterns) == 0 {
			return nil, fmt.Errorf("intent %q has no patterns", intent.ID)
		}

		ci := compiledIntent{intent: intent}
		for _, raw := range intent.Patterns {
			if owner, ok := seen[raw]; ok {
				return nil, fmt.Errorf("pattern %q declared by both %q and %q", raw, owner, intent.ID)
			}
			seen[raw] = intent.ID

			cp, err := compilePattern(raw)
			if err != nil {
				return nil, fmt.Errorf("intent %q: %w", intent.ID, err)
			}
			ci.patterns = append(ci.patterns, cp)
		}

		compiled = append(compiled, ci)
		byID[intent.ID] = intent
	}

	return &Classifier{intents: compiled, byID: byID}, nil
}

// Classify resolves the question to an intent. Questions that match nothing
// resolve to the fallback intent with confidence 0; ties on match count are
// broken by intent declaration order. Classify only fails when the question
// is empty after trimming.
func (c *Classifier) Classify(question string) (domain.ClassificationResult, error) {
	normalized := strings.ToLower(strings.TrimSpace(question))
	if normalized == "" {
		return domain.ClassificationResult{}, fmt.Errorf("%w: question must not be empty", domain.ErrInvalidInput)
	}
	folded := foldDiacritics(normalized)

	bestIdx := -1
	var bestMatches []string

	for i, ci := range c.intents {
		var matches []string
		for _, p := range ci.patterns {
			if p.matches(normalized, folded) {
				matches = append(matches, p.raw)
			}
		}
		if len(matches) > len(bestMatches) {
			bestIdx = i
			bestMatches = matches
		}
	}

	if bestIdx < 0 {
		return domain.ClassificationResult{
			Intent:     c.intents[0].intent,
			Confidence: 0,
		}, nil
	}

	winner := c.intents[bestIdx].intent
	confidence := float64(len(bestMatches)) / float64(len(winner.Patterns))
	if confidence > 1 {
		confidence = 1
	}

	return domain.ClassificationResult{
		Intent:          winner,
		MatchedPatterns: bestMatches,
		Confidence:      confidence,
	}, nil
}

// Lookup resolves an explicit intent identifier, used when the caller
// overrides classification.
func (c *Classifier) Lookup(id domain.IntentID) (domain.Intent, bool) {
	intent, ok := c.byID[id]
	return intent, ok
}

// Intents returns the intent table in declaration order.
func (c *Classifier) Intents() []domain.Intent {
	out := make([]domain.Intent, 0, len(c.intents))
	for _, ci := range c.intents {
		out = append(out, ci.intent)
	}
	return out
}

func compilePattern(raw string) (compiledPattern, error) {
	cp := compiledPattern{raw: raw}

	if !strings.Contains(raw, ".*") {
		cp.literal = strings.ToLower(raw)
		cp.foldedLiteral = foldDiacritics(cp.literal)
		return cp, nil
	}

	re, err := regexp.Compile(strings.ToLower(raw))
	if err != nil {
		return compiledPattern{}, fmt.Errorf("invalid pattern %q: %w", raw, err)
	}
	foldedRe, err := regexp.Compile(foldDiacritics(strings.ToLower(raw)))
	if err != nil {
		return compiledPattern{}, fmt.Errorf("invalid pattern %q: %w", raw, err)
	}

	cp.re = re
	cp.foldedRe = foldedRe
	return cp, nil
}

// matches tests the pattern against the normalized question and its
// diacritics-folded form. A pattern counts at most once.
func (p compiledPattern) matches(normalized, folded string) bool {
	if p.re != nil {
		return p.re.MatchString(normalized) || p.foldedRe.MatchString(folded)
	}
	return strings.Contains(normalized, p.literal) || strings.Contains(folded, p.foldedLiteral)
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldDiacritics strips combining marks so "tom tat" matches "tóm tắt".
// đ does not decompose under NFD and is mapped explicitly.
func foldDiacritics(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	folded = strings.ReplaceAll(folded, "đ", "d")
	folded = strings.ReplaceAll(folded, "Đ", "D")
	return folded
}
