package model

import (
	"strings"
	"time"
)

// QuestionType defines how an answer is evaluated
type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "mcq"        // Single choice, evaluated against option flags
	QuestionTypeMCQMulti  QuestionType = "mcq_multi"  // Multi select, exact set match, no partial credit
	QuestionTypeTrueFalse QuestionType = "true_false" // Exact match against correct answer
	QuestionTypeFillBlank QuestionType = "fill_blank" // Trimmed, case-insensitive match
	QuestionTypeScenario  QuestionType = "scenario"   // Free-form, not auto-gradable
)

// DifficultyLevel grades how demanding a question is
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
	DifficultyExpert DifficultyLevel = "expert"
)

// QuestionStatus is the review lifecycle state
type QuestionStatus string

const (
	StatusDraft         QuestionStatus = "draft"
	StatusPendingReview QuestionStatus = "pending_review"
	StatusPublished     QuestionStatus = "published"
	StatusArchived      QuestionStatus = "archived" // Terminal, excluded from use
)

// Option is one selectable choice owned by an mcq/mcq_multi question
type Option struct {
	ID           string `json:"id" bson:"id"`
	Text         string `json:"text" bson:"text"`
	IsCorrect    bool   `json:"isCorrect" bson:"isCorrect"`
	Feedback     string `json:"feedback,omitempty" bson:"feedback,omitempty"` // Surfaced when this wrong option is picked
	DisplayOrder int    `json:"displayOrder" bson:"displayOrder"`             // Zero-based, re-assigned on replace
}

// Question is a reusable assessment item with a defined correct-answer rule
type Question struct {
	ID               string          `json:"id" bson:"_id,omitempty"`
	Text             string          `json:"text" bson:"text"`
	Type             QuestionType    `json:"type" bson:"type"`
	Difficulty       DifficultyLevel `json:"difficulty" bson:"difficulty"`
	CorrectAnswer    string          `json:"correctAnswer,omitempty" bson:"correctAnswer,omitempty"` // true_false / fill_blank / scenario
	Explanation      string          `json:"explanation,omitempty" bson:"explanation,omitempty"`     // Shown after a correct answer
	Hint             string          `json:"hint,omitempty" bson:"hint,omitempty"`
	Tags             []string        `json:"tags,omitempty" bson:"tags,omitempty"`
	Options          []Option        `json:"options,omitempty" bson:"options,omitempty"`
	Status           QuestionStatus  `json:"status" bson:"status"`
	AIGenerated      bool            `json:"aiGenerated" bson:"aiGenerated"`
	SourceDocumentID string          `json:"sourceDocumentId,omitempty" bson:"sourceDocumentId,omitempty"` // Linked SOP document
	CreatedBy        string          `json:"createdBy" bson:"createdBy"`
	ReviewedBy       string          `json:"reviewedBy,omitempty" bson:"reviewedBy,omitempty"`
	ReviewedAt       *time.Time      `json:"reviewedAt,omitempty" bson:"reviewedAt,omitempty"`
	ReviewNotes      string          `json:"reviewNotes,omitempty" bson:"reviewNotes,omitempty"`
	CreatedAt        time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// IsChoiceType reports whether the question is answered by picking options
func (q *Question) IsChoiceType() bool {
	return q.Type == QuestionTypeMCQ || q.Type == QuestionTypeMCQMulti
}

// OptionByID returns the embedded option with the given id, or nil
func (q *Question) OptionByID(id string) *Option {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// CorrectOptionIDs returns the ids of all options flagged correct
func (q *Question) CorrectOptionIDs() []string {
	var ids []string
	for _, opt := range q.Options {
		if opt.IsCorrect {
			ids = append(ids, opt.ID)
		}
	}
	return ids
}

// Synonym tables for values arriving from AI output or spreadsheet imports.
// Unrecognized values fall back to mcq / medium.
var questionTypeSynonyms = map[string]QuestionType{
	"mcq":             QuestionTypeMCQ,
	"multiple_choice": QuestionTypeMCQ,
	"multiple-choice": QuestionTypeMCQ,
	"single_choice":   QuestionTypeMCQ,
	"choice":          QuestionTypeMCQ,
	"mcq_multi":       QuestionTypeMCQMulti,
	"multi_select":    QuestionTypeMCQMulti,
	"multiple_select": QuestionTypeMCQMulti,
	"checkbox":        QuestionTypeMCQMulti,
	"true_false":      QuestionTypeTrueFalse,
	"true/false":      QuestionTypeTrueFalse,
	"truefalse":       QuestionTypeTrueFalse,
	"boolean":         QuestionTypeTrueFalse,
	"fill_blank":      QuestionTypeFillBlank,
	"fill_in_blank":   QuestionTypeFillBlank,
	"fill-in":         QuestionTypeFillBlank,
	"short_answer":    QuestionTypeFillBlank,
	"scenario":        QuestionTypeScenario,
	"case_study":      QuestionTypeScenario,
	"situational":     QuestionTypeScenario,
}

var difficultySynonyms = map[string]DifficultyLevel{
	"easy":         DifficultyEasy,
	"simple":       DifficultyEasy,
	"beginner":     DifficultyEasy,
	"basic":        DifficultyEasy,
	"medium":       DifficultyMedium,
	"moderate":     DifficultyMedium,
	"intermediate": DifficultyMedium,
	"hard":         DifficultyHard,
	"difficult":    DifficultyHard,
	"advanced":     DifficultyHard,
	"expert":       DifficultyExpert,
	"master":       DifficultyExpert,
}

// NormalizeQuestionType maps a raw type name to a canonical QuestionType,
// defaulting to mcq when unrecognized.
func NormalizeQuestionType(raw string) QuestionType {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, " ", "_")
	if t, ok := questionTypeSynonyms[key]; ok {
		return t
	}
	return QuestionTypeMCQ
}

// NormalizeDifficulty maps a raw difficulty name to a canonical level,
// defaulting to medium when unrecognized.
func NormalizeDifficulty(raw string) DifficultyLevel {
	key := strings.ToLower(strings.TrimSpace(raw))
	if d, ok := difficultySynonyms[key]; ok {
		return d
	}
	return DifficultyMedium
}

// ValidQuestionType reports whether t is one of the canonical types
func ValidQuestionType(t QuestionType) bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeMCQMulti, QuestionTypeTrueFalse, QuestionTypeFillBlank, QuestionTypeScenario:
		return true
	}
	return false
}

// ValidDifficulty reports whether d is one of the canonical levels
func ValidDifficulty(d DifficultyLevel) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return true
	}
	return false
}
