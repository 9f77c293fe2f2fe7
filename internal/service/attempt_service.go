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

// dayFormat keys all calendar-day bookkeeping. Days are UTC throughout.
const dayFormat = "2006-01-02"

func utcDay(t time.Time) string {
	return t.UTC().Format(dayFormat)
}

// AttemptService records answer submissions as immutable attempt facts
type AttemptService struct {
	attemptRepo    repository.AttemptRepo
	questionRepo   repository.QuestionRepo
	challengeCache cache.ChallengeCache
	evaluator      *EvaluatorService
	broadcaster    Broadcaster
}

// NewAttemptService creates a new attempt service
func NewAttemptService(
	attemptRepo repository.AttemptRepo,
	questionRepo repository.QuestionRepo,
	challengeCache cache.ChallengeCache,
	evaluator *EvaluatorService,
) *AttemptService {
	return &AttemptService{
		attemptRepo:    attemptRepo,
		questionRepo:   questionRepo,
		challengeCache: challengeCache,
		evaluator:      evaluator,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *AttemptService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Record evaluates a submission and persists the attempt. Returns the
// evaluation result so callers can show immediate feedback.
func (s *AttemptService) Record(ctx context.Context, userID string, sub *model.AnswerSubmission) (*model.EvaluationResult, error) {
	if userID == "" {
		return nil, apperr.Invalid("userId", "must not be empty")
	}
	if sub == nil || sub.QuestionID == "" {
		return nil, apperr.Invalid("questionId", "must not be empty")
	}

	question, err := s.questionRepo.GetByID(ctx, sub.QuestionID)
	if err != nil {
		return nil, apperr.Storage("get question", err)
	}
	if question == nil || question.Status == model.StatusArchived {
		return nil, apperr.NotFound("question", sub.QuestionID)
	}

	result := s.evaluator.Evaluate(question, sub)

	prior, err := s.attemptRepo.CountByUserAndQuestion(ctx, userID, sub.QuestionID)
	if err != nil {
		return nil, apperr.Storage("count attempts", err)
	}

	// Concurrent submissions by the same user can race this count and
	// land on the same ordinal. Tolerated: attempts are facts, not keys.
	attempt := &model.Attempt{
		UserID:            userID,
		QuestionID:        sub.QuestionID,
		SessionID:         sub.SessionID,
		AnswerValue:       sub.Value,
		SelectedOptionIDs: sub.SelectedOptionIDs,
		IsCorrect:         result.IsCorrect,
		ContextType:       sub.ContextType,
		ContextEntityID:   sub.ContextEntityID,
		TimeSpentSeconds:  sub.TimeSpentSeconds,
		HintUsed:          sub.HintUsed,
		AttemptNumber:     int(prior) + 1,
	}
	if err := s.attemptRepo.Insert(ctx, attempt); err != nil {
		return nil, apperr.Storage("insert attempt", err)
	}

	if sub.ContextType == model.ContextDailyChallenge {
		s.bumpDailyChallenge(ctx, userID)
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(model.EventAttemptRecorded, model.AttemptRecordedPayload{
			UserID:        userID,
			QuestionID:    sub.QuestionID,
			IsCorrect:     result.IsCorrect,
			AttemptNumber: attempt.AttemptNumber,
			ContextType:   sub.ContextType,
		})
	}

	return result, nil
}

// GetByID retrieves a single attempt
func (s *AttemptService) GetByID(ctx context.Context, id string) (*model.Attempt, error) {
	attempt, err := s.attemptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage("get attempt", err)
	}
	if attempt == nil {
		return nil, apperr.NotFound("attempt", id)
	}
	return attempt, nil
}

// ListByUser retrieves a user's attempts, newest first
func (s *AttemptService) ListByUser(ctx context.Context, userID string) ([]*model.Attempt, error) {
	attempts, err := s.attemptRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Storage("list attempts", err)
	}
	return attempts, nil
}

// ListBySession retrieves the attempts recorded under one quiz session
func (s *AttemptService) ListBySession(ctx context.Context, sessionID string) ([]*model.Attempt, error) {
	attempts, err := s.attemptRepo.GetBySession(ctx, sessionID)
	if err != nil {
		return nil, apperr.Storage("list session attempts", err)
	}
	return attempts, nil
}

// bumpDailyChallenge advances the Redis counter for today. The counter is
// a convenience mirror of the attempt rows, so failures are logged rather
// than surfaced to the submitter.
func (s *AttemptService) bumpDailyChallenge(ctx context.Context, userID string) {
	if s.challengeCache == nil {
		return
	}
	day := utcDay(time.Now())
	count, err := s.challengeCache.IncrementAttempts(ctx, userID, day)
	if err != nil {
		slog.Warn("failed to bump daily challenge counter", "userId", userID, "day", day, "error", err)
		return
	}
	if count == int64(model.DailyChallengeTarget) && s.broadcaster != nil {
		s.broadcaster.Broadcast(model.EventChallengeCompleted, model.DailyChallengeStatus{
			UserID:        userID,
			AttemptsToday: int(count),
			Target:        model.DailyChallengeTarget,
			Completed:     true,
		})
	}
}
