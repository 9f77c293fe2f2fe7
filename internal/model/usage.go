package model

import "time"

// QuestionUsage links a question to a consuming context such as a training
// module or an SOP quiz. Owned by the context that created it; deletable
// independently of the question.
type QuestionUsage struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	QuestionID   string    `json:"questionId" bson:"questionId"`
	ContextType  string    `json:"contextType" bson:"contextType"` // e.g. "training_module", "sop_quiz"
	ContextID    string    `json:"contextId" bson:"contextId"`
	DisplayOrder int       `json:"displayOrder" bson:"displayOrder"`
	Required     bool      `json:"required" bson:"required"`
	Weight       float64   `json:"weight" bson:"weight"` // Scoring weight within the context
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}
