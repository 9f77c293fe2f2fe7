package service

import (
	"context"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/apperr"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/repository"
)

// UsageService links questions into consumption contexts such as training
// modules or SOP quizzes
type UsageService struct {
	usageRepo    repository.UsageRepo
	questionRepo repository.QuestionRepo
}

// NewUsageService creates a new usage service
func NewUsageService(usageRepo repository.UsageRepo, questionRepo repository.QuestionRepo) *UsageService {
	return &UsageService{
		usageRepo:    usageRepo,
		questionRepo: questionRepo,
	}
}

// Attach links a question to a context. The question must exist and not
// be archived.
func (s *UsageService) Attach(ctx context.Context, link *model.QuestionUsage) (*model.QuestionUsage, error) {
	if link == nil {
		return nil, apperr.Invalid("usage", "must not be nil")
	}
	if link.QuestionID == "" {
		return nil, apperr.Invalid("questionId", "must not be empty")
	}
	if link.ContextType == "" || link.ContextID == "" {
		return nil, apperr.Invalid("context", "contextType and contextId must not be empty")
	}
	if link.DisplayOrder < 0 {
		return nil, apperr.Invalid("displayOrder", "must not be negative")
	}
	if link.Weight < 0 {
		return nil, apperr.Invalid("weight", "must not be negative")
	}
	if link.Weight == 0 {
		link.Weight = 1
	}

	question, err := s.questionRepo.GetByID(ctx, link.QuestionID)
	if err != nil {
		return nil, apperr.Storage("get question", err)
	}
	if question == nil || question.Status == model.StatusArchived {
		return nil, apperr.NotFound("question", link.QuestionID)
	}

	if err := s.usageRepo.Create(ctx, link); err != nil {
		return nil, apperr.Storage("attach question", err)
	}
	return link, nil
}

// ListForContext returns a context's question links in display order
func (s *UsageService) ListForContext(ctx context.Context, contextType, contextID string) ([]*model.QuestionUsage, error) {
	links, err := s.usageRepo.GetByContext(ctx, contextType, contextID)
	if err != nil {
		return nil, apperr.Storage("list usages", err)
	}
	return links, nil
}

// ListForQuestion returns every context a question is used in
func (s *UsageService) ListForQuestion(ctx context.Context, questionID string) ([]*model.QuestionUsage, error) {
	links, err := s.usageRepo.GetByQuestion(ctx, questionID)
	if err != nil {
		return nil, apperr.Storage("list question usages", err)
	}
	return links, nil
}

// Detach removes a link. The question itself is untouched.
func (s *UsageService) Detach(ctx context.Context, usageID string) error {
	link, err := s.usageRepo.GetByID(ctx, usageID)
	if err != nil {
		return apperr.Storage("get usage", err)
	}
	if link == nil {
		return apperr.NotFound("usage", usageID)
	}
	if err := s.usageRepo.Delete(ctx, usageID); err != nil {
		return apperr.Storage("detach question", err)
	}
	return nil
}
