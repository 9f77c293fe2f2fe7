package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/apperr"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/cache"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/repository"
)

// ReviewNotifier sends review-decision emails to question authors
// (avoids a hard dependency on the mail package in tests)
type ReviewNotifier interface {
	SendQuestionApproved(authorID, questionText string) error
	SendQuestionRejected(authorID, questionText, notes string) error
}

// QuestionService handles question CRUD and the review workflow
type QuestionService struct {
	questionRepo repository.QuestionRepo
	statsCache   cache.StatsCache
	notifier     ReviewNotifier
	broadcaster  Broadcaster
}

// NewQuestionService creates a new question service
func NewQuestionService(
	questionRepo repository.QuestionRepo,
	statsCache cache.StatsCache,
	notifier ReviewNotifier,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		statsCache:   statsCache,
		notifier:     notifier,
	}
}

// SetBroadcaster sets the broadcaster for WebSocket events
func (s *QuestionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Create validates and persists a new question in draft status
func (s *QuestionService) Create(ctx context.Context, q *model.Question) (*model.Question, error) {
	if err := validateQuestion(q); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	q.Status = model.StatusDraft
	q.ReviewedBy = ""
	q.ReviewedAt = nil
	q.ReviewNotes = ""
	q.CreatedAt = now
	q.UpdatedAt = now
	assignOptionOrdinals(q.Options)

	if err := s.questionRepo.Create(ctx, q); err != nil {
		return nil, apperr.Storage("create question", err)
	}
	return q, nil
}

// GetByID retrieves a question with its options
func (s *QuestionService) GetByID(ctx context.Context, id string) (*model.Question, error) {
	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperr.Storage("get question", err)
	}
	if q == nil {
		return nil, apperr.NotFound("question", id)
	}
	return q, nil
}

// List retrieves questions matching the filter
func (s *QuestionService) List(ctx context.Context, filter repository.QuestionFilter) ([]*model.Question, error) {
	questions, err := s.questionRepo.List(ctx, filter)
	if err != nil {
		return nil, apperr.Storage("list questions", err)
	}
	return questions, nil
}

// ListPublished retrieves published questions only
func (s *QuestionService) ListPublished(ctx context.Context, filter repository.QuestionFilter) ([]*model.Question, error) {
	filter.Status = model.StatusPublished
	return s.List(ctx, filter)
}

// Update applies content edits to a draft question. Published content is
// immutable; archive and recreate instead.
func (s *QuestionService) Update(ctx context.Context, q *model.Question) (*model.Question, error) {
	existing, err := s.GetByID(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if existing.Status != model.StatusDraft {
		return nil, apperr.Conflict(fmt.Sprintf("cannot edit question in status %q, only drafts are editable", existing.Status))
	}
	if err := validateQuestion(q); err != nil {
		return nil, err
	}

	q.Status = existing.Status
	q.CreatedBy = existing.CreatedBy
	q.CreatedAt = existing.CreatedAt
	q.ReviewedBy = existing.ReviewedBy
	q.ReviewedAt = existing.ReviewedAt
	q.ReviewNotes = existing.ReviewNotes
	q.UpdatedAt = time.Now().UTC()
	assignOptionOrdinals(q.Options)

	if err := s.questionRepo.Update(ctx, q); err != nil {
		return nil, apperr.Storage("update question", err)
	}
	s.invalidateStats(ctx, q.ID)
	return q, nil
}

// ReplaceOptions swaps the full option set of a draft question and
// re-assigns fresh ordinals 0..n-1
func (s *QuestionService) ReplaceOptions(ctx context.Context, questionID string, options []model.Option) (*model.Question, error) {
	q, err := s.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q.Status != model.StatusDraft {
		return nil, apperr.Conflict(fmt.Sprintf("cannot replace options of question in status %q, only drafts are editable", q.Status))
	}
	if !q.IsChoiceType() {
		return nil, apperr.Invalid("options", fmt.Sprintf("question type %q does not carry options", q.Type))
	}
	if !hasCorrectOption(options) {
		return nil, apperr.Invalid("options", "at least one option must be marked correct")
	}

	q.Options = options
	assignOptionOrdinals(q.Options)
	q.UpdatedAt = time.Now().UTC()

	if err := s.questionRepo.Update(ctx, q); err != nil {
		return nil, apperr.Storage("replace options", err)
	}
	s.invalidateStats(ctx, q.ID)
	return q, nil
}

// Delete removes a draft question. Anything past draft is part of the
// review trail and must be archived instead.
func (s *QuestionService) Delete(ctx context.Context, id string) error {
	q, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if q.Status != model.StatusDraft {
		return apperr.Conflict(fmt.Sprintf("cannot delete question in status %q, archive it instead", q.Status))
	}
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return apperr.Storage("delete question", err)
	}
	return nil
}

// SubmitForReview moves a draft into the review queue
func (s *QuestionService) SubmitForReview(ctx context.Context, id string) (*model.Question, error) {
	q, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Status != model.StatusDraft {
		return nil, apperr.Conflict(fmt.Sprintf("cannot submit question in status %q for review", q.Status))
	}

	q.Status = model.StatusPendingReview
	q.UpdatedAt = time.Now().UTC()
	if err := s.questionRepo.Update(ctx, q); err != nil {
		return nil, apperr.Storage("submit for review", err)
	}
	return q, nil
}

// Approve publishes a pending question, recording the reviewer decision
func (s *QuestionService) Approve(ctx context.Context, id, reviewerID, notes string) (*model.Question, error) {
	q, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Status != model.StatusPendingReview {
		return nil, apperr.Conflict(fmt.Sprintf("cannot approve question in status %q", q.Status))
	}

	now := time.Now().UTC()
	q.Status = model.StatusPublished
	q.ReviewedBy = reviewerID
	q.ReviewedAt = &now
	q.ReviewNotes = notes
	q.UpdatedAt = now

	if err := s.questionRepo.Update(ctx, q); err != nil {
		return nil, apperr.Storage("approve question", err)
	}

	s.notifyDecision(q, true, notes)
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(model.EventQuestionPublished, model.ReviewDecisionPayload{
			QuestionID: q.ID,
			ReviewedBy: reviewerID,
		})
	}
	return q, nil
}

// Reject sends a pending question back to draft. Notes are mandatory so
// the author knows what to fix.
func (s *QuestionService) Reject(ctx context.Context, id, reviewerID, notes string) (*model.Question, error) {
	if strings.TrimSpace(notes) == "" {
		return nil, apperr.Invalid("notes", "rejection requires non-empty notes")
	}

	q, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Status != model.StatusPendingReview {
		return nil, apperr.Conflict(fmt.Sprintf("cannot reject question in status %q", q.Status))
	}

	now := time.Now().UTC()
	q.Status = model.StatusDraft
	q.ReviewedBy = reviewerID
	q.ReviewedAt = &now
	q.ReviewNotes = notes
	q.UpdatedAt = now

	if err := s.questionRepo.Update(ctx, q); err != nil {
		return nil, apperr.Storage("reject question", err)
	}

	s.notifyDecision(q, false, notes)
	if s.broadcaster != nil {
		s.broadcaster.Broadcast(model.EventQuestionRejected, model.ReviewDecisionPayload{
			QuestionID: q.ID,
			ReviewedBy: reviewerID,
			Notes:      notes,
		})
	}
	return q, nil
}

// Archive retires a question from any state. Terminal.
func (s *QuestionService) Archive(ctx context.Context, id string) (*model.Question, error) {
	q, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if q.Status == model.StatusArchived {
		return nil, apperr.Conflict("question is already archived")
	}

	q.Status = model.StatusArchived
	q.UpdatedAt = time.Now().UTC()
	if err := s.questionRepo.Update(ctx, q); err != nil {
		return nil, apperr.Storage("archive question", err)
	}
	s.invalidateStats(ctx, q.ID)
	return q, nil
}

// notifyDecision emails the author about a review outcome. Best effort,
// never blocks the review call.
func (s *QuestionService) notifyDecision(q *model.Question, approved bool, notes string) {
	if s.notifier == nil || q.CreatedBy == "" {
		return
	}
	go func() {
		var err error
		if approved {
			err = s.notifier.SendQuestionApproved(q.CreatedBy, q.Text)
		} else {
			err = s.notifier.SendQuestionRejected(q.CreatedBy, q.Text, notes)
		}
		if err != nil {
			slog.Warn("failed to send review notification",
				"questionId", q.ID,
				"authorId", q.CreatedBy,
				"error", err)
		}
	}()
}

func (s *QuestionService) invalidateStats(ctx context.Context, questionID string) {
	if s.statsCache == nil {
		return
	}
	if err := s.statsCache.Invalidate(ctx, questionID); err != nil {
		slog.Warn("failed to invalidate question stats", "questionId", questionID, "error", err)
	}
}

// validateQuestion enforces the question invariants shared by create,
// update and import paths
func validateQuestion(q *model.Question) error {
	if q == nil {
		return apperr.Invalid("question", "must not be nil")
	}
	if strings.TrimSpace(q.Text) == "" {
		return apperr.Invalid("text", "must not be empty")
	}
	if !model.ValidQuestionType(q.Type) {
		return apperr.Invalid("type", fmt.Sprintf("unknown question type %q", q.Type))
	}
	if !model.ValidDifficulty(q.Difficulty) {
		return apperr.Invalid("difficulty", fmt.Sprintf("unknown difficulty %q", q.Difficulty))
	}

	if q.IsChoiceType() {
		if len(q.Options) == 0 {
			return apperr.Invalid("options", fmt.Sprintf("question type %q requires options", q.Type))
		}
		if !hasCorrectOption(q.Options) {
			return apperr.Invalid("options", "at least one option must be marked correct")
		}
	} else {
		if len(q.Options) > 0 {
			return apperr.Invalid("options", fmt.Sprintf("question type %q does not carry options", q.Type))
		}
		if strings.TrimSpace(q.CorrectAnswer) == "" {
			return apperr.Invalid("correctAnswer", fmt.Sprintf("question type %q requires a correct answer", q.Type))
		}
	}
	return nil
}

func hasCorrectOption(options []model.Option) bool {
	for _, opt := range options {
		if opt.IsCorrect {
			return true
		}
	}
	return false
}

// assignOptionOrdinals gives every option a stable id and a fresh
// zero-based display order
func assignOptionOrdinals(options []model.Option) {
	for i := range options {
		if options[i].ID == "" {
			options[i].ID = uuid.NewString()
		}
		options[i].DisplayOrder = i
	}
}
