package domain

// IntentID identifies a question intent in the fixed taxonomy.
type IntentID string

const (
	IntentSummary       IntentID = "tom_tat"
	IntentObjective     IntentID = "muc_tieu"
	IntentHowTo         IntentID = "cach_thuc_hien"
	IntentPlan          IntentID = "ke_hoach"
	IntentDifficulty    IntentID = "kho_khan"
	IntentResult        IntentID = "ket_qua"
	IntentComparison    IntentID = "so_sanh"
	IntentSuggestion    IntentID = "goi_y"
	IntentEffectiveness IntentID = "hieu_qua"
	IntentOption        IntentID = "phuong_an"
)

// Intent couples an intent label with its matching patterns and the
// structural template its answers are expected to follow.
//
// Patterns are either literal keywords (substring match) or regular
// expressions (anything containing ".*"). Declaration order matters:
// it is the classifier's tie-break.
type Intent struct {
	ID       IntentID
	Label    string
	Patterns []string
	Template OutputTemplate
}

// OutputTemplate describes the expected shape of a formatted answer.
type OutputTemplate struct {
	// StructureType is one of "hierarchical", "mixed", "table-based", "comparative".
	StructureType string

	// ExpectTables marks intents whose answers normally carry markdown tables.
	ExpectTables bool

	// NumberingStyle is the section numbering the prompt asks for.
	NumberingStyle string

	// Sections is the expected section count range, e.g. "3-6".
	Sections string

	// EstimatedLength is the expected answer length in words, e.g. "500-1000".
	EstimatedLength string

	// TableColumns lists expected table headers for table-based intents.
	TableColumns []string
}

// DefaultIntents returns the production intent table. The slice and its
// contents are treated as immutable after startup; the first entry is the
// classifier's fallback intent.
func DefaultIntents() []Intent {
	return []Intent{
		{
			ID:       IntentSummary,
			Label:    "Tóm tắt",
			Patterns: []string{"tóm tắt", "tổng hợp", "trình bày", "nêu rõ", "overview", "summarize"},
			Template: OutputTemplate{
				StructureType:   "hierarchical",
				ExpectTables:    false,
				NumberingStyle:  "roman",
				Sections:        "3-6",
				EstimatedLength: "500-1000",
			},
		},
		{
			ID:       IntentObjective,
			Label:    "Mục tiêu",
			Patterns: []string{"mục tiêu", "mục đích", "định hướng", "target", "objective", "goal"},
			Template: OutputTemplate{
				StructureType:   "mixed",
				ExpectTables:    true,
				NumberingStyle:  "roman",
				Sections:        "2-4",
				EstimatedLength: "400-800",
			},
		},
		{
			ID:       IntentHowTo,
			Label:    "Cách thực hiện",
			Patterns: []string{"làm thế nào", "cách thực hiện", "cách làm", "how to", "implementation"},
			Template: OutputTemplate{
				StructureType:   "hierarchical",
				ExpectTables:    false,
				NumberingStyle:  "roman",
				Sections:        "5-8",
				EstimatedLength: "800-1500",
			},
		},
		{
			ID:       IntentPlan,
			Label:    "Kế hoạch",
			Patterns: []string{"kế hoạch", "lộ trình", "roadmap", "triển khai", "xây dựng.*kế hoạch", "plan"},
			Template: OutputTemplate{
				StructureType:   "table-based",
				ExpectTables:    true,
				NumberingStyle:  "phases",
				Sections:        "2-4",
				EstimatedLength: "600-1000",
				TableColumns:    []string{"Nhiệm vụ", "Hoạt động", "Thời gian", "Căn cứ"},
			},
		},
		{
			ID:       IntentDifficulty,
			Label:    "Khó khăn",
			Patterns: []string{"khó khăn", "vướng mắc", "thách thức", "hạn chế", "rào cản", "challenge", "difficulty"},
			Template: OutputTemplate{
				StructureType:   "hierarchical",
				ExpectTables:    false,
				NumberingStyle:  "roman",
				Sections:        "3-5",
				EstimatedLength: "500-900",
			},
		},
		{
			ID:       IntentResult,
			Label:    "Kết quả",
			Patterns: []string{"kết quả", "thành tích", "đạt được", "hoàn thành", "result", "achievement"},
			Template: OutputTemplate{
				StructureType:   "mixed",
				ExpectTables:    true,
				NumberingStyle:  "roman",
				Sections:        "2-4",
				EstimatedLength: "400-800",
			},
		},
		{
			ID:       IntentComparison,
			Label:    "So sánh",
			Patterns: []string{"so sánh", "đối chiếu", "xếp hạng", "nào.*nhất", "comparison", "ranking"},
			Template: OutputTemplate{
				StructureType:   "table-based",
				ExpectTables:    true,
				NumberingStyle:  "ranking",
				Sections:        "2-3",
				EstimatedLength: "500-900",
				TableColumns:    []string{"Đơn vị", "Chỉ tiêu", "Kết quả", "Ghi chú"},
			},
		},
		{
			ID:       IntentSuggestion,
			Label:    "Gợi ý",
			Patterns: []string{"gợi ý", "đề xuất", "khuyến nghị", "suggestion", "recommendation"},
			Template: OutputTemplate{
				StructureType:   "hierarchical",
				ExpectTables:    false,
				NumberingStyle:  "roman",
				Sections:        "3-5",
				EstimatedLength: "600-1000",
			},
		},
		{
			ID:       IntentEffectiveness,
			Label:    "Hiệu quả",
			Patterns: []string{"hiệu quả", "tác động", "ảnh hưởng", "impact", "effect"},
			Template: OutputTemplate{
				StructureType:   "mixed",
				ExpectTables:    true,
				NumberingStyle:  "roman",
				Sections:        "3-5",
				EstimatedLength: "600-1000",
			},
		},
		{
			ID:       IntentOption,
			Label:    "Phương án",
			Patterns: []string{"phương án", "giải pháp", "cách khác", "lựa chọn", "alternative", "solution"},
			Template: OutputTemplate{
				StructureType:   "comparative",
				ExpectTables:    true,
				NumberingStyle:  "arabic",
				Sections:        "2-4",
				EstimatedLength: "700-1200",
			},
		},
	}
}
