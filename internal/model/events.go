package model

import "time"

// Event names broadcast to connected dashboards
const (
	EventQuestionPublished  = "question.published"
	EventQuestionRejected   = "question.rejected"
	EventAttemptRecorded    = "attempt.recorded"
	EventSessionCompleted   = "session.completed"
	EventChallengeCompleted = "challenge.completed"
)

// Event is the envelope every websocket message is wrapped in
type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// AttemptRecordedPayload accompanies EventAttemptRecorded
type AttemptRecordedPayload struct {
	UserID        string `json:"userId"`
	QuestionID    string `json:"questionId"`
	IsCorrect     bool   `json:"isCorrect"`
	AttemptNumber int    `json:"attemptNumber"`
	ContextType   string `json:"contextType,omitempty"`
}

// SessionCompletedPayload accompanies EventSessionCompleted
type SessionCompletedPayload struct {
	SessionID       string  `json:"sessionId"`
	UserID          string  `json:"userId"`
	QuizType        string  `json:"quizType"`
	ScorePercentage float64 `json:"scorePercentage"`
	Passed          bool    `json:"passed"`
}

// ReviewDecisionPayload accompanies question review events
type ReviewDecisionPayload struct {
	QuestionID string `json:"questionId"`
	ReviewedBy string `json:"reviewedBy"`
	Notes      string `json:"notes,omitempty"`
}
