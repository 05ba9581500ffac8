package summarizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vanban-ai/summarizer/internal/domain"
)

const basePrompt = `Bạn là một chuyên gia phân tích và tóm tắt văn bản tiếng Việt.

NHIỆM VỤ: Trả lời câu hỏi dựa trên nội dung tài liệu được cung cấp.

YÊU CẦU FORMAT:
`

const truncationMarker = "[...Tài liệu còn tiếp...]"

var formatInstructions = map[domain.IntentID]string{
	domain.IntentSummary: `
- Cấu trúc: Tiêu đề + Các phần (I, II, III...) + Bullets + Kết luận
- Dùng heading rõ ràng (###)
- Mỗi phần có 3-6 bullets
- Độ dài: 500-1000 từ
`,
	domain.IntentObjective: `
- Cấu trúc: Tổng quan + Bảng chỉ tiêu + Giải thích
- Dùng bảng Markdown cho các chỉ tiêu cụ thể
- Highlight các con số quan trọng
- Độ dài: 400-800 từ
`,
	domain.IntentHowTo: `
- Cấu trúc: Các bước thực hiện (I, II, III...)
- Mỗi bước có sub-items cụ thể
- Dùng số La Mã cho các phần chính
- Độ dài: 800-1500 từ
`,
	domain.IntentPlan: `
- Cấu trúc: Bảng kế hoạch với cột (Giai đoạn, Nhiệm vụ, Hoạt động, Thời gian)
- Dùng bảng Markdown
- Có phân loại theo thời gian/ưu tiên
- Độ dài: 600-1000 từ
`,
	domain.IntentDifficulty: `
- Cấu trúc: Các nhóm khó khăn (I, II, III...)
- Mỗi nhóm có bullets cụ thể + ví dụ
- Đánh giá mức độ nghiêm trọng
- Độ dài: 500-900 từ
`,
	domain.IntentResult: `
- Cấu trúc: Tổng quan + Bảng số liệu + Phân tích
- Dùng bảng cho kết quả định lượng
- Highlight thành tích nổi bật
- Độ dài: 400-800 từ
`,
	domain.IntentComparison: `
- Cấu trúc: Bảng so sánh + Phân tích + Xếp hạng
- Dùng bảng Markdown với nhiều cột
- Có kết luận rõ ràng
- Độ dài: 500-900 từ
`,
	domain.IntentSuggestion: `
- Cấu trúc: Các nhóm gợi ý (I, II, III...)
- Mỗi gợi ý có hành động cụ thể
- Phân loại theo độ ưu tiên
- Độ dài: 600-1000 từ
`,
	domain.IntentEffectiveness: `
- Cấu trúc: Tổng quan + Các khía cạnh hiệu quả + Số liệu
- Dùng bảng cho số liệu định lượng
- Phân tích cụ thể
- Độ dài: 600-1000 từ
`,
	domain.IntentOption: `
- Cấu trúc: Liệt kê phương án + So sánh ưu/nhược + Khuyến nghị
- Dùng bảng so sánh nếu cần
- Đánh giá rõ ràng
- Độ dài: 700-1200 từ
`,
}

func buildSystemPrompt(intent domain.Intent) string {
	instructions, ok := formatInstructions[intent.ID]
	if !ok {
		instructions = formatInstructions[domain.IntentSummary]
	}
	return basePrompt + instructions
}

func buildUserPrompt(document, question string, intent domain.Intent, maxDocumentLength int) string {
	document = truncateDocument(document, maxDocumentLength)

	return fmt.Sprintf(`NỘI DUNG TÀI LIỆU:
%s

---

CÂU HỎI: %s

LOẠI CÂU HỎI: %s

Hãy trả lời câu hỏi dựa trên nội dung tài liệu theo đúng format yêu cầu.`, document, question, intent.ID)
}

// truncateDocument keeps the document within the provider context budget.
// The limit is in runes, matching how document length is reported.
func truncateDocument(document string, maxLength int) string {
	if maxLength <= 0 || utf8.RuneCountInString(document) <= maxLength {
		return document
	}

	runes := []rune(document)
	var b strings.Builder
	b.WriteString(string(runes[:maxLength]))
	b.WriteString("\n\n")
	b.WriteString(truncationMarker)
	return b.String()
}
