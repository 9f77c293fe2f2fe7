package model

import "time"

// DailyChallengeTarget is how many daily-challenge attempts complete the day
const DailyChallengeTarget = 3

// QuestionAnalytics aggregates all attempts at one question
type QuestionAnalytics struct {
	QuestionID      string    `json:"questionId"`
	TotalAttempts   int       `json:"totalAttempts"`
	CorrectAttempts int       `json:"correctAttempts"`
	AccuracyRate    float64   `json:"accuracyRate"`   // Percentage, 0 when no attempts
	AvgTimeSeconds  float64   `json:"avgTimeSeconds"` // Mean time spent, 0 when no attempts
	HintUsageRate   float64   `json:"hintUsageRate"`  // Percentage of attempts with a hint
	ComputedAt      time.Time `json:"computedAt"`
}

// UserStats aggregates one user's attempts across all questions
type UserStats struct {
	UserID          string  `json:"userId"`
	TotalAttempts   int     `json:"totalAttempts"`
	CorrectAttempts int     `json:"correctAttempts"`
	AccuracyRate    float64 `json:"accuracyRate"`
	AvgTimeSeconds  float64 `json:"avgTimeSeconds"`
	HintUsageRate   float64 `json:"hintUsageRate"`
	RecentStreak    int     `json:"recentStreak"` // Consecutive calendar days, anchored at today or yesterday
}

// DailyChallengeStatus reports progress against today's challenge
type DailyChallengeStatus struct {
	UserID        string `json:"userId"`
	AttemptsToday int    `json:"attemptsToday"`
	Target        int    `json:"target"`
	Completed     bool   `json:"completed"`
}

// LeaderboardEntry is one row of a quiz-type leaderboard
type LeaderboardEntry struct {
	UserID string  `json:"userId"`
	Points float64 `json:"points"`
	Rank   int     `json:"rank"`
}
