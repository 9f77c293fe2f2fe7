package service

import (
	"context"
	"testing"
	"time"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/apperr"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

func newQuestionServiceForTest() (*QuestionService, *fakeNotifier, *fakeBroadcaster) {
	notifier := newFakeNotifier()
	svc := NewQuestionService(newFakeQuestionRepo(), newFakeStatsCache(), notifier)
	broadcaster := newFakeBroadcaster()
	svc.SetBroadcaster(broadcaster)
	return svc, notifier, broadcaster
}

func draftMCQ() *model.Question {
	return &model.Question{
		Text:       "Where are lost keycards logged?",
		Type:       model.QuestionTypeMCQ,
		Difficulty: model.DifficultyEasy,
		CreatedBy:  "staff-1",
		Options: []model.Option{
			{Text: "Front desk registry", IsCorrect: true},
			{Text: "Housekeeping whiteboard", Feedback: "the registry is the only log"},
		},
	}
}

func TestCreateQuestionDefaults(t *testing.T) {
	svc, _, _ := newQuestionServiceForTest()

	created, err := svc.Create(context.Background(), draftMCQ())
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if created.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if created.Status != model.StatusDraft {
		t.Errorf("expected status draft, got %q", created.Status)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	for i, opt := range created.Options {
		if opt.ID == "" {
			t.Errorf("option %d: expected an id to be assigned", i)
		}
		if opt.DisplayOrder != i {
			t.Errorf("option %d: expected display order %d, got %d", i, i, opt.DisplayOrder)
		}
	}
}

func TestCreateQuestionValidation(t *testing.T) {
	svc, _, _ := newQuestionServiceForTest()

	tests := []struct {
		name   string
		mutate func(*model.Question)
	}{
		{"empty text", func(q *model.Question) { q.Text = "  " }},
		{"unknown type", func(q *model.Question) { q.Type = "essay" }},
		{"unknown difficulty", func(q *model.Question) { q.Difficulty = "impossible" }},
		{"choice type without options", func(q *model.Question) { q.Options = nil }},
		{"no correct option", func(q *model.Question) {
			for i := range q.Options {
				q.Options[i].IsCorrect = false
			}
		}},
		{"non-choice with options", func(q *model.Question) {
			q.Type = model.QuestionTypeTrueFalse
			q.CorrectAnswer = "true"
		}},
		{"non-choice without correct answer", func(q *model.Question) {
			q.Type = model.QuestionTypeFillBlank
			q.Options = nil
			q.CorrectAnswer = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := draftMCQ()
			tt.mutate(q)
			_, err := svc.Create(context.Background(), q)
			if !apperr.IsValidation(err) {
				t.Errorf("expected a validation error, got %v", err)
			}
		})
	}
}

func TestReviewWorkflowHappyPath(t *testing.T) {
	svc, notifier, broadcaster := newQuestionServiceForTest()
	ctx := context.Background()

	created, err := svc.Create(ctx, draftMCQ())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	pending, err := svc.SubmitForReview(ctx, created.ID)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if pending.Status != model.StatusPendingReview {
		t.Errorf("expected pending_review, got %q", pending.Status)
	}

	published, err := svc.Approve(ctx, created.ID, "reviewer-1", "looks right")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if published.Status != model.StatusPublished {
		t.Errorf("expected published, got %q", published.Status)
	}
	if published.ReviewedBy != "reviewer-1" {
		t.Errorf("expected reviewer to be recorded, got %q", published.ReviewedBy)
	}
	if published.ReviewedAt == nil {
		t.Error("expected review time to be recorded")
	}

	if !broadcaster.has(model.EventQuestionPublished) {
		t.Errorf("expected %s broadcast, got %v", model.EventQuestionPublished, broadcaster.eventNames())
	}
	if msg, ok := notifier.waitForSend(time.Second); !ok || msg != "approved:staff-1" {
		t.Errorf("expected approval email to the author, got %q (sent=%v)", msg, ok)
	}
}

func TestRejectRequiresNotes(t *testing.T) {
	svc, notifier, broadcaster := newQuestionServiceForTest()
	ctx := context.Background()

	created, _ := svc.Create(ctx, draftMCQ())
	if _, err := svc.SubmitForReview(ctx, created.ID); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := svc.Reject(ctx, created.ID, "reviewer-1", ""); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for empty notes, got %v", err)
	}
	if _, err := svc.Reject(ctx, created.ID, "reviewer-1", "   "); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for blank notes, got %v", err)
	}

	rejected, err := svc.Reject(ctx, created.ID, "reviewer-1", "the second option reads as correct too")
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != model.StatusDraft {
		t.Errorf("expected rejection to return the question to draft, got %q", rejected.Status)
	}
	if rejected.ReviewNotes != "the second option reads as correct too" {
		t.Errorf("expected notes to be recorded, got %q", rejected.ReviewNotes)
	}

	if !broadcaster.has(model.EventQuestionRejected) {
		t.Errorf("expected %s broadcast, got %v", model.EventQuestionRejected, broadcaster.eventNames())
	}
	if msg, ok := notifier.waitForSend(time.Second); !ok || msg != "rejected:staff-1" {
		t.Errorf("expected rejection email to the author, got %q (sent=%v)", msg, ok)
	}

	// A fixed draft can go back through review.
	if _, err := svc.SubmitForReview(ctx, created.ID); err != nil {
		t.Errorf("expected resubmission after rejection to succeed, got %v", err)
	}
}

func TestIllegalTransitions(t *testing.T) {
	svc, _, _ := newQuestionServiceForTest()
	ctx := context.Background()

	draft, _ := svc.Create(ctx, draftMCQ())
	if _, err := svc.Approve(ctx, draft.ID, "reviewer-1", ""); !apperr.IsConflict(err) {
		t.Errorf("expected conflict approving a draft, got %v", err)
	}
	if _, err := svc.Reject(ctx, draft.ID, "reviewer-1", "notes"); !apperr.IsConflict(err) {
		t.Errorf("expected conflict rejecting a draft, got %v", err)
	}

	if _, err := svc.SubmitForReview(ctx, draft.ID); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.SubmitForReview(ctx, draft.ID); !apperr.IsConflict(err) {
		t.Errorf("expected conflict resubmitting a pending question, got %v", err)
	}

	if _, err := svc.Approve(ctx, draft.ID, "reviewer-1", ""); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if _, err := svc.SubmitForReview(ctx, draft.ID); !apperr.IsConflict(err) {
		t.Errorf("expected conflict submitting a published question, got %v", err)
	}
	if _, err := svc.Approve(ctx, draft.ID, "reviewer-1", ""); !apperr.IsConflict(err) {
		t.Errorf("expected conflict re-approving a published question, got %v", err)
	}
}

func TestArchiveIsTerminal(t *testing.T) {
	svc, _, _ := newQuestionServiceForTest()
	ctx := context.Background()

	// Archival is allowed from every live state.
	fromDraft, _ := svc.Create(ctx, draftMCQ())
	if _, err := svc.Archive(ctx, fromDraft.ID); err != nil {
		t.Errorf("expected archiving a draft to succeed, got %v", err)
	}

	fromPending, _ := svc.Create(ctx, draftMCQ())
	svc.SubmitForReview(ctx, fromPending.ID)
	if _, err := svc.Archive(ctx, fromPending.ID); err != nil {
		t.Errorf("expected archiving a pending question to succeed, got %v", err)
	}

	fromPublished, _ := svc.Create(ctx, draftMCQ())
	svc.SubmitForReview(ctx, fromPublished.ID)
	svc.Approve(ctx, fromPublished.ID, "reviewer-1", "")
	archived, err := svc.Archive(ctx, fromPublished.ID)
	if err != nil {
		t.Fatalf("expected archiving a published question to succeed, got %v", err)
	}
	if archived.Status != model.StatusArchived {
		t.Errorf("expected archived status, got %q", archived.Status)
	}

	if _, err := svc.Archive(ctx, fromPublished.ID); !apperr.IsConflict(err) {
		t.Errorf("expected conflict archiving twice, got %v", err)
	}
	if _, err := svc.SubmitForReview(ctx, fromPublished.ID); !apperr.IsConflict(err) {
		t.Errorf("expected conflict reviving an archived question, got %v", err)
	}
}

func TestUpdateOnlyTouchesDrafts(t *testing.T) {
	svc, _, _ := newQuestionServiceForTest()
	ctx := context.Background()

	created, _ := svc.Create(ctx, draftMCQ())
	origCreatedAt := created.CreatedAt

	edit := draftMCQ()
	edit.ID = created.ID
	edit.Text = "Where does a found keycard get logged?"
	edit.CreatedBy = "someone-else"

	updated, err := svc.Update(ctx, edit)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Text != "Where does a found keycard get logged?" {
		t.Errorf("expected text edit to apply, got %q", updated.Text)
	}
	if updated.CreatedBy != "staff-1" {
		t.Errorf("expected authorship to be preserved, got %q", updated.CreatedBy)
	}
	if !updated.CreatedAt.Equal(origCreatedAt) {
		t.Error("expected creation time to be preserved")
	}

	if _, err := svc.SubmitForReview(ctx, created.ID); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.Update(ctx, edit); !apperr.IsConflict(err) {
		t.Errorf("expected conflict editing a pending question, got %v", err)
	}
}

func TestReplaceOptionsRenumbers(t *testing.T) {
	svc, _, _ := newQuestionServiceForTest()
	ctx := context.Background()

	created, _ := svc.Create(ctx, draftMCQ())

	replaced, err := svc.ReplaceOptions(ctx, created.ID, []model.Option{
		{Text: "Night audit log", DisplayOrder: 7},
		{Text: "Front desk registry", IsCorrect: true, DisplayOrder: 99},
		{Text: "Shift handover notes", DisplayOrder: -3},
	})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if len(replaced.Options) != 3 {
		t.Fatalf("expected 3 options, got %d", len(replaced.Options))
	}
	for i, opt := range replaced.Options {
		if opt.DisplayOrder != i {
			t.Errorf("option %d: expected fresh ordinal %d, got %d", i, i, opt.DisplayOrder)
		}
		if opt.ID == "" {
			t.Errorf("option %d: expected an id to be assigned", i)
		}
	}

	if _, err := svc.ReplaceOptions(ctx, created.ID, []model.Option{{Text: "all wrong"}}); !apperr.IsValidation(err) {
		t.Errorf("expected validation error replacing with no correct option, got %v", err)
	}
}

func TestDeleteOnlyTouchesDrafts(t *testing.T) {
	svc, _, _ := newQuestionServiceForTest()
	ctx := context.Background()

	draft, _ := svc.Create(ctx, draftMCQ())
	if err := svc.Delete(ctx, draft.ID); err != nil {
		t.Fatalf("expected deleting a draft to succeed, got %v", err)
	}
	if _, err := svc.GetByID(ctx, draft.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected deleted question to be gone, got %v", err)
	}

	published, _ := svc.Create(ctx, draftMCQ())
	svc.SubmitForReview(ctx, published.ID)
	svc.Approve(ctx, published.ID, "reviewer-1", "")
	if err := svc.Delete(ctx, published.ID); !apperr.IsConflict(err) {
		t.Errorf("expected conflict deleting published content, got %v", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _, _ := newQuestionServiceForTest()
	if _, err := svc.GetByID(context.Background(), "missing"); !apperr.IsNotFound(err) {
		t.Errorf("expected a not-found error, got %v", err)
	}
}
