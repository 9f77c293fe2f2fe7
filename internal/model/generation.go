package model

// GenerationRequest describes what the AI collaborator should produce
type GenerationRequest struct {
	SourceContent       string         `json:"sourceContent"` // SOP text or training material
	SourceDocumentID    string         `json:"sourceDocumentId,omitempty"`
	Count               int            `json:"count"`
	Types               []QuestionType `json:"types,omitempty"` // Empty means any
	Difficulty          string         `json:"difficulty,omitempty"`
	IncludeHints        bool           `json:"includeHints"`
	IncludeExplanations bool           `json:"includeExplanations"`
}

// GeneratedOption is one choice in an AI-proposed question
type GeneratedOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback,omitempty"`
}

// GeneratedQuestion is the canonical shape the generation service returns
// after normalizing the provider's heterogeneous output. Type and
// Difficulty are already canonical; raw synonym values never leave the
// generation boundary.
type GeneratedQuestion struct {
	Text          string            `json:"text"`
	Type          QuestionType      `json:"type"`
	Difficulty    DifficultyLevel   `json:"difficulty"`
	CorrectAnswer string            `json:"correct_answer,omitempty"`
	Explanation   string            `json:"explanation,omitempty"`
	Hint          string            `json:"hint,omitempty"`
	Tags          []string          `json:"tags,omitempty"`
	Options       []GeneratedOption `json:"options,omitempty"`
}
