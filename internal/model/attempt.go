package model

import "time"

// ContextDailyChallenge tags attempts made through the daily challenge
const ContextDailyChallenge = "daily_challenge"

// AnswerSubmission is what a caller hands to the evaluator and recorder.
// Value carries the answer for true_false/fill_blank/scenario and the single
// option id for mcq; SelectedOptionIDs carries the set for mcq_multi.
type AnswerSubmission struct {
	QuestionID        string   `json:"questionId"`
	SessionID         string   `json:"sessionId,omitempty"`
	Value             string   `json:"value,omitempty"`
	SelectedOptionIDs []string `json:"selectedOptionIds,omitempty"`
	ContextType       string   `json:"contextType,omitempty"` // e.g. "daily_challenge", "module_quiz"
	ContextEntityID   string   `json:"contextEntityId,omitempty"`
	TimeSpentSeconds  int      `json:"timeSpentSeconds"`
	HintUsed          bool     `json:"hintUsed"`
}

// EvaluationResult is the outcome of evaluating one submission
type EvaluationResult struct {
	IsCorrect bool   `json:"isCorrect"`
	Feedback  string `json:"feedback,omitempty"`
}

// Attempt is one immutable record of a user answering one question once.
// Attempts are never mutated or deleted; they are the source of truth for
// all analytics.
type Attempt struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	UserID            string    `json:"userId" bson:"userId"`
	QuestionID        string    `json:"questionId" bson:"questionId"`
	SessionID         string    `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	AnswerValue       string    `json:"answerValue,omitempty" bson:"answerValue,omitempty"`
	SelectedOptionIDs []string  `json:"selectedOptionIds,omitempty" bson:"selectedOptionIds,omitempty"`
	IsCorrect         bool      `json:"isCorrect" bson:"isCorrect"`
	ContextType       string    `json:"contextType,omitempty" bson:"contextType,omitempty"`
	ContextEntityID   string    `json:"contextEntityId,omitempty" bson:"contextEntityId,omitempty"`
	TimeSpentSeconds  int       `json:"timeSpentSeconds" bson:"timeSpentSeconds"`
	HintUsed          bool      `json:"hintUsed" bson:"hintUsed"`
	AttemptNumber     int       `json:"attemptNumber" bson:"attemptNumber"` // 1-based per (user, question), count at write time
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"`
}
