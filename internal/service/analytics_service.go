package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/apperr"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/cache"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/repository"
)

// AnalyticsService aggregates attempt facts into question and user stats.
// Reads degrade gracefully: a storage failure logs a warning and yields
// zeroed results instead of an error, so dashboards stay up when a
// supplementary query breaks. Recording paths never use this policy.
type AnalyticsService struct {
	attemptRepo    repository.AttemptRepo
	questionRepo   repository.QuestionRepo
	statsCache     cache.StatsCache
	challengeCache cache.ChallengeCache
	leaderboard    cache.LeaderboardCache
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	attemptRepo repository.AttemptRepo,
	questionRepo repository.QuestionRepo,
	statsCache cache.StatsCache,
	challengeCache cache.ChallengeCache,
	leaderboard cache.LeaderboardCache,
) *AnalyticsService {
	return &AnalyticsService{
		attemptRepo:    attemptRepo,
		questionRepo:   questionRepo,
		statsCache:     statsCache,
		challengeCache: challengeCache,
		leaderboard:    leaderboard,
	}
}

// QuestionAnalytics returns accuracy, timing and hint rates for one
// question, cached with a short TTL
func (s *AnalyticsService) QuestionAnalytics(ctx context.Context, questionID string) (*model.QuestionAnalytics, error) {
	if s.statsCache != nil {
		cached, err := s.statsCache.GetQuestionAnalytics(ctx, questionID)
		if err != nil {
			slog.Warn("failed to read question stats cache", "questionId", questionID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	analytics, err := s.computeQuestionAnalytics(ctx, questionID)
	if err != nil {
		slog.Warn("failed to compute question analytics", "questionId", questionID, "error", err)
		return &model.QuestionAnalytics{QuestionID: questionID, ComputedAt: time.Now().UTC()}, nil
	}

	if s.statsCache != nil {
		if err := s.statsCache.SetQuestionAnalytics(ctx, analytics); err != nil {
			slog.Warn("failed to cache question stats", "questionId", questionID, "error", err)
		}
	}
	return analytics, nil
}

func (s *AnalyticsService) computeQuestionAnalytics(ctx context.Context, questionID string) (*model.QuestionAnalytics, error) {
	attempts, err := s.attemptRepo.GetByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}

	total, correct, accuracy, avgTime, hintRate := aggregateAttempts(attempts)
	return &model.QuestionAnalytics{
		QuestionID:      questionID,
		TotalAttempts:   total,
		CorrectAttempts: correct,
		AccuracyRate:    accuracy,
		AvgTimeSeconds:  avgTime,
		HintUsageRate:   hintRate,
		ComputedAt:      time.Now().UTC(),
	}, nil
}

// UserStats returns a user's overall rates plus their consecutive-day
// streak
func (s *AnalyticsService) UserStats(ctx context.Context, userID string) (*model.UserStats, error) {
	attempts, err := s.attemptRepo.GetByUser(ctx, userID)
	if err != nil {
		slog.Warn("failed to load user attempts", "userId", userID, "error", err)
		return &model.UserStats{UserID: userID}, nil
	}

	total, correct, accuracy, avgTime, hintRate := aggregateAttempts(attempts)
	return &model.UserStats{
		UserID:          userID,
		TotalAttempts:   total,
		CorrectAttempts: correct,
		AccuracyRate:    accuracy,
		AvgTimeSeconds:  avgTime,
		HintUsageRate:   hintRate,
		RecentStreak:    computeStreak(attempts, time.Now()),
	}, nil
}

// DailyChallengeStatus reports progress toward today's challenge. The
// Redis counter is a fast path; a zero or an error falls back to counting
// the attempt rows, which stay authoritative.
func (s *AnalyticsService) DailyChallengeStatus(ctx context.Context, userID string) (*model.DailyChallengeStatus, error) {
	count := 0
	if s.challengeCache != nil {
		cached, err := s.challengeCache.GetAttempts(ctx, userID, utcDay(time.Now()))
		if err != nil {
			slog.Warn("failed to read daily challenge counter", "userId", userID, "error", err)
		} else {
			count = cached
		}
	}

	if count == 0 {
		midnight := utcMidnight(time.Now())
		fromRows, err := s.attemptRepo.CountUserContextSince(ctx, userID, model.ContextDailyChallenge, midnight)
		if err != nil {
			slog.Warn("failed to count daily challenge attempts", "userId", userID, "error", err)
		} else {
			count = int(fromRows)
		}
	}

	return &model.DailyChallengeStatus{
		UserID:        userID,
		AttemptsToday: count,
		Target:        model.DailyChallengeTarget,
		Completed:     count >= model.DailyChallengeTarget,
	}, nil
}

// DailyChallengeQuestions returns today's challenge set. The scheduler
// normally picks it at midnight; on a miss we sample on demand and pin
// the result so every user sees the same set for the rest of the day.
// This serves quiz content, so unlike the stat reads it fails loud.
func (s *AnalyticsService) DailyChallengeQuestions(ctx context.Context) ([]*model.Question, error) {
	day := utcDay(time.Now())

	if s.challengeCache != nil {
		ids, err := s.challengeCache.GetDailyQuestions(ctx, day)
		if err != nil {
			slog.Warn("failed to read daily challenge set", "day", day, "error", err)
		} else if len(ids) > 0 {
			questions, err := s.questionRepo.GetByIDs(ctx, ids)
			if err != nil {
				return nil, apperr.Storage("load daily challenge questions", err)
			}
			if len(questions) > 0 {
				return questions, nil
			}
		}
	}

	questions, err := s.questionRepo.SamplePublished(ctx, model.DailyChallengeTarget)
	if err != nil {
		return nil, apperr.Storage("sample daily challenge questions", err)
	}

	if s.challengeCache != nil && len(questions) > 0 {
		ids := make([]string, len(questions))
		for i, q := range questions {
			ids[i] = q.ID
		}
		if err := s.challengeCache.SetDailyQuestions(ctx, day, ids); err != nil {
			slog.Warn("failed to pin daily challenge set", "day", day, "error", err)
		}
	}
	return questions, nil
}

// Leaderboard returns the top earners for a quiz type
func (s *AnalyticsService) Leaderboard(ctx context.Context, quizType string, limit int) ([]model.LeaderboardEntry, error) {
	if s.leaderboard == nil {
		return []model.LeaderboardEntry{}, nil
	}
	entries, err := s.leaderboard.GetTop(ctx, quizType, limit)
	if err != nil {
		slog.Warn("failed to read leaderboard", "quizType", quizType, "error", err)
		return []model.LeaderboardEntry{}, nil
	}
	return entries, nil
}

// UserRank returns a user's 1-indexed leaderboard position, -1 when the
// user has not scored yet
func (s *AnalyticsService) UserRank(ctx context.Context, quizType, userID string) (int64, error) {
	if s.leaderboard == nil {
		return -1, nil
	}
	rank, err := s.leaderboard.GetRank(ctx, quizType, userID)
	if err != nil {
		slog.Warn("failed to read leaderboard rank", "quizType", quizType, "userId", userID, "error", err)
		return -1, nil
	}
	return rank, nil
}

// WarmQuestionStats recomputes and caches analytics for every question
// attempted since the given time. Called by the nightly warmup job.
func (s *AnalyticsService) WarmQuestionStats(ctx context.Context, since time.Time) (int, error) {
	ids, err := s.attemptRepo.RecentQuestionIDs(ctx, since)
	if err != nil {
		return 0, apperr.Storage("list recently attempted questions", err)
	}

	warmed := 0
	for _, id := range ids {
		analytics, err := s.computeQuestionAnalytics(ctx, id)
		if err != nil {
			slog.Warn("failed to warm question stats", "questionId", id, "error", err)
			continue
		}
		if s.statsCache != nil {
			if err := s.statsCache.SetQuestionAnalytics(ctx, analytics); err != nil {
				slog.Warn("failed to cache question stats", "questionId", id, "error", err)
				continue
			}
		}
		warmed++
	}
	return warmed, nil
}

// aggregateAttempts folds attempt rows into the shared rate shape. All
// rates are 0 when there are no attempts.
func aggregateAttempts(attempts []*model.Attempt) (total, correct int, accuracy, avgTime, hintRate float64) {
	total = len(attempts)
	if total == 0 {
		return
	}

	var timeSum, hints int
	for _, a := range attempts {
		if a.IsCorrect {
			correct++
		}
		timeSum += a.TimeSpentSeconds
		if a.HintUsed {
			hints++
		}
	}
	accuracy = float64(correct) / float64(total) * 100
	avgTime = float64(timeSum) / float64(total)
	hintRate = float64(hints) / float64(total) * 100
	return
}

// computeStreak counts consecutive calendar days of activity walking back
// from today (or yesterday, so a streak survives until the current day
// ends). Days are UTC. A most recent activity day before yesterday means
// the streak is broken: 0.
func computeStreak(attempts []*model.Attempt, now time.Time) int {
	if len(attempts) == 0 {
		return 0
	}

	active := make(map[string]struct{}, len(attempts))
	for _, a := range attempts {
		active[utcDay(a.CreatedAt)] = struct{}{}
	}

	anchor := utcMidnight(now)
	if _, ok := active[anchor.Format(dayFormat)]; !ok {
		anchor = anchor.AddDate(0, 0, -1)
		if _, ok := active[anchor.Format(dayFormat)]; !ok {
			return 0
		}
	}

	streak := 0
	for day := anchor; ; day = day.AddDate(0, 0, -1) {
		if _, ok := active[day.Format(dayFormat)]; !ok {
			break
		}
		streak++
	}
	return streak
}

func utcMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
