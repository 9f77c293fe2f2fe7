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

// SessionService handles the quiz session lifecycle. Sessions only see
// aggregate totals; individual attempts are recorded independently.
type SessionService struct {
	sessionRepo repository.SessionRepo
	leaderboard cache.LeaderboardCache
	broadcaster Broadcaster
}

// NewSessionService creates a new session service
func NewSessionService(sessionRepo repository.SessionRepo, leaderboard cache.LeaderboardCache) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		leaderboard: leaderboard,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Start opens a new session in created status
func (s *SessionService) Start(ctx context.Context, session *model.QuizSession) (*model.QuizSession, error) {
	if session == nil {
		return nil, apperr.Invalid("session", "must not be nil")
	}
	if session.UserID == "" {
		return nil, apperr.Invalid("userId", "must not be empty")
	}
	if session.QuizType == "" {
		return nil, apperr.Invalid("quizType", "must not be empty")
	}
	if session.TimeLimitSeconds < 0 {
		return nil, apperr.Invalid("timeLimitSeconds", "must not be negative")
	}
	if session.PassingScore != nil && (*session.PassingScore < 0 || *session.PassingScore > 100) {
		return nil, apperr.Invalid("passingScore", "must be between 0 and 100")
	}

	session.Status = model.SessionCreated
	session.TotalQuestions = 0
	session.CorrectAnswers = 0
	session.TotalPoints = 0
	session.EarnedPoints = 0
	session.ScorePercentage = 0
	session.Passed = false
	session.StartedAt = time.Now().UTC()
	session.CompletedAt = nil

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, apperr.Storage("create session", err)
	}
	return session, nil
}

// Complete closes a session with its aggregate totals. Terminal: a second
// completion is rejected instead of silently rewriting the score.
func (s *SessionService) Complete(ctx context.Context, sessionID string, results *model.SessionResults) (*model.QuizSession, error) {
	if err := validateResults(results); err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, apperr.Storage("get session", err)
	}
	if session == nil {
		return nil, apperr.NotFound("session", sessionID)
	}
	if session.Status == model.SessionCompleted {
		return nil, apperr.Conflict("session is already completed")
	}

	// Zero total points means nothing was scoreable; report 0 rather
	// than dividing.
	score := 0.0
	if results.TotalPoints > 0 {
		score = results.EarnedPoints / results.TotalPoints * 100
	}

	now := time.Now().UTC()
	session.Status = model.SessionCompleted
	session.TotalQuestions = results.TotalQuestions
	session.CorrectAnswers = results.CorrectAnswers
	session.TotalPoints = results.TotalPoints
	session.EarnedPoints = results.EarnedPoints
	session.ScorePercentage = score
	session.Passed = score >= session.EffectivePassingScore()
	session.CompletedAt = &now

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, apperr.Storage("complete session", err)
	}

	if s.leaderboard != nil && results.EarnedPoints > 0 {
		if err := s.leaderboard.AddPoints(ctx, session.QuizType, session.UserID, results.EarnedPoints); err != nil {
			slog.Warn("failed to update leaderboard", "sessionId", session.ID, "quizType", session.QuizType, "error", err)
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(model.EventSessionCompleted, model.SessionCompletedPayload{
			SessionID:       session.ID,
			UserID:          session.UserID,
			QuizType:        session.QuizType,
			ScorePercentage: session.ScorePercentage,
			Passed:          session.Passed,
		})
	}

	return session, nil
}

// GetByID retrieves a session
func (s *SessionService) GetByID(ctx context.Context, id string) (*model.QuizSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage("get session", err)
	}
	if session == nil {
		return nil, apperr.NotFound("session", id)
	}
	return session, nil
}

// ListByUser retrieves a user's sessions, newest first
func (s *SessionService) ListByUser(ctx context.Context, userID string, limit int64) ([]*model.QuizSession, error) {
	sessions, err := s.sessionRepo.GetByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperr.Storage("list sessions", err)
	}
	return sessions, nil
}

// validateResults keeps completion aggregates sane so the derived score
// stays within 0..100
func validateResults(r *model.SessionResults) error {
	if r == nil {
		return apperr.Invalid("results", "must not be nil")
	}
	if r.TotalQuestions < 0 {
		return apperr.Invalid("totalQuestions", "must not be negative")
	}
	if r.CorrectAnswers < 0 || r.CorrectAnswers > r.TotalQuestions {
		return apperr.Invalid("correctAnswers", "must be between 0 and totalQuestions")
	}
	if r.TotalPoints < 0 || r.EarnedPoints < 0 {
		return apperr.Invalid("points", "must not be negative")
	}
	if r.EarnedPoints > r.TotalPoints {
		return apperr.Invalid("earnedPoints", "must not exceed totalPoints")
	}
	return nil
}
