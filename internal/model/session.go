package model

import "time"

// DefaultPassingScore applies when a session has no configured threshold
const DefaultPassingScore = 70.0

type SessionStatus string

const (
	SessionCreated   SessionStatus = "created"
	SessionCompleted SessionStatus = "completed" // Terminal, never reopened
)

// SessionResults are the aggregate totals a caller submits at completion.
// Attempts are accumulated outside the session entity; only the final
// numbers are persisted here.
type SessionResults struct {
	TotalQuestions int     `json:"totalQuestions"`
	CorrectAnswers int     `json:"correctAnswers"`
	TotalPoints    float64 `json:"totalPoints"`
	EarnedPoints   float64 `json:"earnedPoints"`
}

// QuizSession groups a bounded sequence of attempts under one scored
// quiz-taking event
type QuizSession struct {
	ID               string        `json:"id" bson:"_id,omitempty"`
	UserID           string        `json:"userId" bson:"userId"`
	QuizType         string        `json:"quizType" bson:"quizType"` // e.g. "module_quiz", "sop_quiz", "daily_challenge"
	TargetEntityID   string        `json:"targetEntityId,omitempty" bson:"targetEntityId,omitempty"`
	TimeLimitSeconds int           `json:"timeLimitSeconds,omitempty" bson:"timeLimitSeconds,omitempty"`
	PassingScore     *float64      `json:"passingScore,omitempty" bson:"passingScore,omitempty"` // Percentage; nil means default 70
	Status           SessionStatus `json:"status" bson:"status"`
	TotalQuestions   int           `json:"totalQuestions" bson:"totalQuestions"`
	CorrectAnswers   int           `json:"correctAnswers" bson:"correctAnswers"`
	TotalPoints      float64       `json:"totalPoints" bson:"totalPoints"`
	EarnedPoints     float64       `json:"earnedPoints" bson:"earnedPoints"`
	ScorePercentage  float64       `json:"scorePercentage" bson:"scorePercentage"`
	Passed           bool          `json:"passed" bson:"passed"`
	StartedAt        time.Time     `json:"startedAt" bson:"startedAt"`
	CompletedAt      *time.Time    `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// EffectivePassingScore returns the configured threshold or the default
func (s *QuizSession) EffectivePassingScore() float64 {
	if s.PassingScore != nil {
		return *s.PassingScore
	}
	return DefaultPassingScore
}
