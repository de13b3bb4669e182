package models

// InitialGap is a candidate research gap produced by the first LLM pass,
// before validation against related literature.
type InitialGap struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Reasoning   string `json:"reasoning"`
	Evidence    string `json:"evidence"`
}

// ValidationResult is the LLM's judgment of whether a candidate gap
// survives comparison with related papers. Errors during validation
// never invalidate a gap; fallbacks keep IsValid true at low confidence.
type ValidationResult struct {
	IsValid                bool                `json:"is_valid"`
	Confidence             float64             `json:"confidence"`
	Reasoning              string              `json:"reasoning"`
	ShouldModify           bool                `json:"should_modify"`
	ModificationSuggestion string              `json:"modification_suggestion,omitempty"`
	SupportingPapers       []map[string]string `json:"supporting_papers,omitempty"`
	ConflictingPapers      []map[string]string `json:"conflicting_papers,omitempty"`
}
