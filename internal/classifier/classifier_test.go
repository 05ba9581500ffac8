package classifier

import (
	"errors"
	"testing"

	"github.com/vanban-ai/summarizer/internal/domain"
)

func TestClassifier_Classify(t *testing.T) {
	c, err := New(domain.DefaultIntents())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		name     string
		question string
		expected domain.IntentID
	}{
		{
			name:     "summary",
			question: "Tóm tắt tài liệu này",
			expected: domain.IntentSummary,
		},
		{
			name:     "plan beats howto on match count",
			question: "Kế hoạch triển khai trong 6 tháng tới",
			expected: domain.IntentPlan,
		},
		{
			name:     "objective",
			question: "Mục tiêu đến năm 2030 là gì?",
			expected: domain.IntentObjective,
		},
		{
			name:     "howto",
			question: "Làm thế nào để thực hiện nghị quyết này?",
			expected: domain.IntentHowTo,
		},
		{
			name:     "difficulty",
			question: "Khó khăn gì khi thực hiện?",
			expected: domain.IntentDifficulty,
		},
		{
			name:     "result",
			question: "Kết quả thực hiện của xã Vân Hồ",
			expected: domain.IntentResult,
		},
		{
			name:     "comparison via regex",
			question: "Xã nào đang thực hiện chậm nhất?",
			expected: domain.IntentComparison,
		},
		{
			name:     "suggestion",
			question: "Gợi ý các công việc tiếp theo",
			expected: domain.IntentSuggestion,
		},
		{
			name:     "effectiveness",
			question: "Đánh giá hiệu quả của chương trình",
			expected: domain.IntentEffectiveness,
		},
		{
			name:     "option",
			question: "Có phương án nào khác không?",
			expected: domain.IntentOption,
		},
		{
			name:     "plan via build regex",
			question: "Xây dựng kế hoạch cho quý sau",
			expected: domain.IntentPlan,
		},
		{
			name:     "diacritics-free input",
			question: "tom tat van ban nay",
			expected: domain.IntentSummary,
		},
		{
			name:     "uppercase input",
			question: "TÓM TẮT TÀI LIỆU",
			expected: domain.IntentSummary,
		},
		{
			name:     "english keyword",
			question: "Give me an overview of this document",
			expected: domain.IntentSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := c.Classify(tt.question)
			if err != nil {
				t.Fatalf("Classify(%q) failed: %v", tt.question, err)
			}
			if result.Intent.ID != tt.expected {
				t.Errorf("Classify(%q) = %q, expected %q (matched %v)",
					tt.question, result.Intent.ID, tt.expected, result.MatchedPatterns)
			}
			if len(result.MatchedPatterns) == 0 {
				t.Errorf("Classify(%q) matched no patterns", tt.question)
			}
			if result.Confidence <= 0 || result.Confidence > 1 {
				t.Errorf("Classify(%q) confidence = %v, expected in (0,1]", tt.question, result.Confidence)
			}
		})
	}
}

func TestClassifier_Fallback(t *testing.T) {
	c, err := New(domain.DefaultIntents())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	result, err := c.Classify("Xin chào")
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}

	if result.Intent.ID != domain.IntentSummary {
		t.Errorf("fallback intent = %q, expected %q", result.Intent.ID, domain.IntentSummary)
	}
	if result.Confidence != 0 {
		t.Errorf("fallback confidence = %v, expected 0", result.Confidence)
	}
	if len(result.MatchedPatterns) != 0 {
		t.Errorf("fallback matched patterns = %v, expected none", result.MatchedPatterns)
	}
}

func TestClassifier_EmptyQuestion(t *testing.T) {
	c, err := New(domain.DefaultIntents())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	for _, question := range []string{"", "   ", "\n\t "} {
		if _, err := c.Classify(question); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Classify(%q) error = %v, expected ErrInvalidInput", question, err)
		}
	}
}

func TestClassifier_TieBreakByDeclarationOrder(t *testing.T) {
	alpha := domain.Intent{ID: "alpha", Label: "Alpha", Patterns: []string{"hello"}}
	beta := domain.Intent{ID: "beta", Label: "Beta", Patterns: []string{"world"}}

	question := "hello world"

	c, err := New([]domain.Intent{alpha, beta})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	result, err := c.Classify(question)
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}
	if result.Intent.ID != "alpha" {
		t.Errorf("tie resolved to %q, expected first-declared %q", result.Intent.ID, "alpha")
	}

	// Reversing the table must flip the winner.
	c, err = New([]domain.Intent{beta, alpha})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	result, err = c.Classify(question)
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}
	if result.Intent.ID != "beta" {
		t.Errorf("tie resolved to %q, expected first-declared %q", result.Intent.ID, "beta")
	}
}

func TestClassifier_TieIgnoresPatternLength(t *testing.T) {
	short := domain.Intent{ID: "short", Label: "Short", Patterns: []string{"ab"}}
	long := domain.Intent{ID: "long", Label: "Long", Patterns: []string{"wxyz"}}

	c, err := New([]domain.Intent{short, long})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// One match each; the longer matched literal must not outrank
	// declaration order.
	result, err := c.Classify("ab wxyz")
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}
	if result.Intent.ID != "short" {
		t.Errorf("tie resolved to %q, expected first-declared %q", result.Intent.ID, "short")
	}
}

func TestClassifier_MoreMatchesWin(t *testing.T) {
	first := domain.Intent{ID: "first", Label: "First", Patterns: []string{"alpha"}}
	second := domain.Intent{ID: "second", Label: "Second", Patterns: []string{"beta", "gamma"}}

	c, err := New([]domain.Intent{first, second})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	result, err := c.Classify("alpha beta gamma")
	if err != nil {
		t.Fatalf("Classify() failed: %v", err)
	}
	if result.Intent.ID != "second" {
		t.Errorf("winner = %q, expected %q with two matches", result.Intent.ID, "second")
	}
	if len(result.MatchedPatterns) != 2 {
		t.Errorf("matched patterns = %v, expected two", result.MatchedPatterns)
	}
	if result.Confidence != 1 {
		t.Errorf("confidence = %v, expected 1", result.Confidence)
	}
}

func TestClassifier_Lookup(t *testing.T) {
	c, err := New(domain.DefaultIntents())
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	intent, ok := c.Lookup(domain.IntentComparison)
	if !ok {
		t.Fatal("Lookup(so_sanh) not found")
	}
	if intent.Template.StructureType != "table-based" {
		t.Errorf("so_sanh structure = %q, expected table-based", intent.Template.StructureType)
	}

	if _, ok := c.Lookup("nonexistent"); ok {
		t.Error("Lookup(nonexistent) unexpectedly found an intent")
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		intents []domain.Intent
	}{
		{
			name:    "empty table",
			intents: nil,
		},
		{
			name: "intent without patterns",
			intents: []domain.Intent{
				{ID: "empty", Label: "Empty"},
			},
		},
		{
			name: "duplicate pattern across intents",
			intents: []domain.Intent{
				{ID: "a", Label: "A", Patterns: []string{"shared"}},
				{ID: "b", Label: "B", Patterns: []string{"shared"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.intents); err == nil {
				t.Error("New() succeeded, expected an error")
			}
		})
	}
}

func TestFoldDiacritics(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"tóm tắt", "tom tat"},
		{"kế hoạch", "ke hoach"},
		{"đối chiếu", "doi chieu"},
		{"plain ascii", "plain ascii"},
	}

	for _, tt := range tests {
		if got := foldDiacritics(tt.in); got != tt.expected {
			t.Errorf("foldDiacritics(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}
