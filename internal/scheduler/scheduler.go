// Package scheduler runs the recurring maintenance jobs: daily challenge
// rotation and the nightly question stats warm.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

const jobTimeout = 2 * time.Minute

// Analytics is the slice of the analytics service the jobs need
type Analytics interface {
	DailyChallengeQuestions(ctx context.Context) ([]*model.Question, error)
	WarmQuestionStats(ctx context.Context, since time.Time) (int, error)
}

// Scheduler manages the recurring jobs
type Scheduler struct {
	scheduler *gocron.Scheduler
	analytics Analytics
}

// New creates a new scheduler. All jobs run on UTC wall time, matching
// the UTC day boundaries used for challenges and streaks.
func New(analytics Analytics) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		analytics: analytics,
	}
}

// Start registers and begins all jobs without blocking
func (s *Scheduler) Start() {
	// Shortly after midnight so the day's set is pinned before the
	// first staff member opens the challenge.
	if _, err := s.scheduler.Every(1).Day().At("00:05").Do(s.rotateDailyChallenge); err != nil {
		slog.Error("failed to schedule daily challenge rotation", "error", err)
	}
	if _, err := s.scheduler.Every(1).Day().At("02:30").Do(s.warmQuestionStats); err != nil {
		slog.Error("failed to schedule stats warm", "error", err)
	}

	s.scheduler.StartAsync()
	slog.Info("scheduler started", "jobs", len(s.scheduler.Jobs()))
}

// Stop terminates all scheduled jobs
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// rotateDailyChallenge pins today's challenge set. The analytics service
// samples and pins on first read anyway; running it here just moves that
// cost off the first request of the day.
func (s *Scheduler) rotateDailyChallenge() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	questions, err := s.analytics.DailyChallengeQuestions(ctx)
	if err != nil {
		slog.Error("daily challenge rotation failed", "error", err)
		return
	}
	slog.Info("daily challenge rotated", "questions", len(questions))
}

// warmQuestionStats recomputes cached analytics for every question
// attempted in the last day
func (s *Scheduler) warmQuestionStats() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	warmed, err := s.analytics.WarmQuestionStats(ctx, time.Now().UTC().Add(-24*time.Hour))
	if err != nil {
		slog.Error("stats warm failed", "error", err)
		return
	}
	slog.Info("question stats warmed", "questions", warmed)
}
