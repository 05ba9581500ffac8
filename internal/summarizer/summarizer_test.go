package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanban-ai/summarizer/internal/domain"
	"github.com/vanban-ai/summarizer/pkg/llm"
)

type fakeModel struct {
	lastReq llm.GenerateRequest
	resp    *llm.GenerateResponse
	err     error
	block   bool
}

func (m *fakeModel) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.lastReq = req
	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *fakeModel) ID() string { return "fake:test" }

func summaryIntent(t *testing.T) domain.Intent {
	t.Helper()
	for _, intent := range domain.DefaultIntents() {
		if intent.ID == domain.IntentSummary {
			return intent
		}
	}
	t.Fatal("summary intent not found")
	return domain.Intent{}
}

func TestSummarize_BuildsPrompts(t *testing.T) {
	model := &fakeModel{resp: &llm.GenerateResponse{Content: "Câu trả lời."}}
	svc := NewService(Dependencies{
		Model:             model,
		MaxTokens:         1234,
		Temperature:       0.7,
		MaxDocumentLength: 15000,
	})

	answer, err := svc.Summarize(context.Background(), "Nội dung nghị quyết.", "Tóm tắt tài liệu này", summaryIntent(t))
	require.NoError(t, err)
	assert.Equal(t, "Câu trả lời.", answer)

	assert.Contains(t, model.lastReq.System, "chuyên gia phân tích và tóm tắt văn bản tiếng Việt")
	assert.Contains(t, model.lastReq.System, "Tiêu đề + Các phần")

	assert.Contains(t, model.lastReq.Prompt, "NỘI DUNG TÀI LIỆU:\nNội dung nghị quyết.")
	assert.Contains(t, model.lastReq.Prompt, "CÂU HỎI: Tóm tắt tài liệu này")
	assert.Contains(t, model.lastReq.Prompt, "LOẠI CÂU HỎI: tom_tat")

	assert.Equal(t, 1234, model.lastReq.MaxTokens)
	assert.InDelta(t, 0.7, model.lastReq.Temperature, 1e-6)
}

func TestSummarize_TruncatesLongDocuments(t *testing.T) {
	model := &fakeModel{resp: &llm.GenerateResponse{Content: "ok"}}
	svc := NewService(Dependencies{
		Model:             model,
		MaxDocumentLength: 50,
	})

	document := strings.Repeat("ă", 120)
	_, err := svc.Summarize(context.Background(), document, "Tóm tắt", summaryIntent(t))
	require.NoError(t, err)

	assert.Contains(t, model.lastReq.Prompt, truncationMarker)
	assert.NotContains(t, model.lastReq.Prompt, strings.Repeat("ă", 51))
	assert.Contains(t, model.lastReq.Prompt, strings.Repeat("ă", 50))
}

func TestSummarize_ShortDocumentNotTruncated(t *testing.T) {
	model := &fakeModel{resp: &llm.GenerateResponse{Content: "ok"}}
	svc := NewService(Dependencies{
		Model:             model,
		MaxDocumentLength: 15000,
	})

	_, err := svc.Summarize(context.Background(), "ngắn gọn", "Tóm tắt", summaryIntent(t))
	require.NoError(t, err)
	assert.NotContains(t, model.lastReq.Prompt, truncationMarker)
}

func TestSummarize_ProviderError(t *testing.T) {
	model := &fakeModel{err: errors.New("rate limited")}
	svc := NewService(Dependencies{Model: model})

	_, err := svc.Summarize(context.Background(), "tài liệu", "Tóm tắt", summaryIntent(t))
	require.ErrorIs(t, err, domain.ErrProvider)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestSummarize_Timeout(t *testing.T) {
	model := &fakeModel{block: true}
	svc := NewService(Dependencies{
		Model:   model,
		Timeout: 20 * time.Millisecond,
	})

	_, err := svc.Summarize(context.Background(), "tài liệu", "Tóm tắt", summaryIntent(t))
	require.ErrorIs(t, err, domain.ErrProviderTimeout)
}

func TestBuildSystemPrompt_UnknownIntentFallsBack(t *testing.T) {
	got := buildSystemPrompt(domain.Intent{ID: "nonexistent"})
	assert.Equal(t, buildSystemPrompt(domain.Intent{ID: domain.IntentSummary}), got)
}

func TestTruncateDocument(t *testing.T) {
	assert.Equal(t, "abc", truncateDocument("abc", 10))
	assert.Equal(t, "abc", truncateDocument("abc", 0))

	got := truncateDocument("abcdef", 3)
	assert.Equal(t, "abc\n\n"+truncationMarker, got)
}
