package service

import (
	"context"
	"strings"
	"testing"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/apperr"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/config"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

func newGenerationServiceForTest() (*GenerationService, *QuestionService) {
	questionSvc, _, _ := newQuestionServiceForTest()
	// No API key: the service runs in mock mode.
	svc := NewGenerationService(&config.AIConfig{TimeoutMS: 1000}, questionSvc)
	return svc, questionSvc
}

func TestGenerateMockWhenUnconfigured(t *testing.T) {
	svc, _ := newGenerationServiceForTest()

	generated, err := svc.Generate(context.Background(), &model.GenerationRequest{
		SourceContent: "Lost keycards are surrendered to the front desk and logged in the registry.",
		Count:         4,
		Difficulty:    "simple",
		IncludeHints:  true,
	})
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if len(generated) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(generated))
	}
	for i, g := range generated {
		if g.Text == "" {
			t.Errorf("question %d: expected text", i)
		}
		if !model.ValidQuestionType(g.Type) {
			t.Errorf("question %d: expected a canonical type, got %q", i, g.Type)
		}
		if g.Difficulty != model.DifficultyEasy {
			t.Errorf("question %d: expected normalized difficulty easy, got %q", i, g.Difficulty)
		}
		if g.Hint == "" {
			t.Errorf("question %d: expected a hint", i)
		}
	}
}

func TestGenerateValidation(t *testing.T) {
	svc, _ := newGenerationServiceForTest()
	ctx := context.Background()

	if _, err := svc.Generate(ctx, nil); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for nil request, got %v", err)
	}
	if _, err := svc.Generate(ctx, &model.GenerationRequest{SourceContent: "  "}); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for empty source, got %v", err)
	}
	if _, err := svc.Generate(ctx, &model.GenerationRequest{SourceContent: "text", Count: 21}); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for oversized batch, got %v", err)
	}
}

func TestNormalizeGenerated(t *testing.T) {
	tests := []struct {
		name           string
		in             model.GeneratedQuestion
		wantType       model.QuestionType
		wantDifficulty model.DifficultyLevel
	}{
		{"already canonical", model.GeneratedQuestion{Type: "mcq", Difficulty: "hard"}, model.QuestionTypeMCQ, model.DifficultyHard},
		{"multiple_choice synonym", model.GeneratedQuestion{Type: "multiple_choice", Difficulty: "simple"}, model.QuestionTypeMCQ, model.DifficultyEasy},
		{"spaced and cased", model.GeneratedQuestion{Type: " Multiple Choice ", Difficulty: "ADVANCED"}, model.QuestionTypeMCQ, model.DifficultyHard},
		{"boolean synonym", model.GeneratedQuestion{Type: "boolean", Difficulty: "moderate"}, model.QuestionTypeTrueFalse, model.DifficultyMedium},
		{"checkbox synonym", model.GeneratedQuestion{Type: "checkbox", Difficulty: "master"}, model.QuestionTypeMCQMulti, model.DifficultyExpert},
		{"short answer synonym", model.GeneratedQuestion{Type: "short_answer", Difficulty: "beginner"}, model.QuestionTypeFillBlank, model.DifficultyEasy},
		{"case study synonym", model.GeneratedQuestion{Type: "case_study", Difficulty: "intermediate"}, model.QuestionTypeScenario, model.DifficultyMedium},
		{"unknowns fall back", model.GeneratedQuestion{Type: "interpretive_dance", Difficulty: "ludicrous"}, model.QuestionTypeMCQ, model.DifficultyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.in
			normalizeGenerated(&g)
			if g.Type != tt.wantType {
				t.Errorf("expected type %q, got %q", tt.wantType, g.Type)
			}
			if g.Difficulty != tt.wantDifficulty {
				t.Errorf("expected difficulty %q, got %q", tt.wantDifficulty, g.Difficulty)
			}
		})
	}
}

func TestNormalizeGeneratedClearsForeignAnswerFields(t *testing.T) {
	choice := model.GeneratedQuestion{
		Type:          "multiple_choice",
		CorrectAnswer: "B",
		Options:       []model.GeneratedOption{{Text: "B", IsCorrect: true}},
	}
	normalizeGenerated(&choice)
	if choice.CorrectAnswer != "" {
		t.Errorf("expected correct_answer cleared for choice types, got %q", choice.CorrectAnswer)
	}
	if len(choice.Options) != 1 {
		t.Error("expected options kept for choice types")
	}

	boolean := model.GeneratedQuestion{
		Type:          "true/false",
		CorrectAnswer: " true ",
		Options:       []model.GeneratedOption{{Text: "true", IsCorrect: true}},
	}
	normalizeGenerated(&boolean)
	if boolean.Options != nil {
		t.Error("expected options cleared for non-choice types")
	}
	if boolean.CorrectAnswer != "true" {
		t.Errorf("expected trimmed correct answer, got %q", boolean.CorrectAnswer)
	}
}

func TestExtractJSONArray(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare array", `[{"text":"q"}]`, `[{"text":"q"}]`},
		{"markdown fence", "```json\n[{\"text\":\"q\"}]\n```", `[{"text":"q"}]`},
		{"prose around", `Here you go: [1, 2, 3] as requested.`, `[1, 2, 3]`},
		{"brackets inside strings", `[{"text":"use [brackets] wisely"}]`, `[{"text":"use [brackets] wisely"}]`},
		{"escaped quotes inside strings", `[{"text":"she said \"done\" [ok]"}]`, `[{"text":"she said \"done\" [ok]"}]`},
		{"nested arrays", `[[1,2],[3]]`, `[[1,2],[3]]`},
		{"unterminated", `[{"text":"q"`, ""},
		{"no array at all", `{"text":"q"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSONArray(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSaveDrafts(t *testing.T) {
	svc, questionSvc := newGenerationServiceForTest()
	ctx := context.Background()

	generated := []model.GeneratedQuestion{
		{
			Text:       "Which registry records lost keycards?",
			Type:       model.QuestionTypeMCQ,
			Difficulty: model.DifficultyEasy,
			Options: []model.GeneratedOption{
				{Text: "Front desk registry", IsCorrect: true},
				{Text: "Pool towel log", Feedback: "towels are not keycards"},
			},
		},
		{
			Text:          "Keycards are logged at the front desk.",
			Type:          model.QuestionTypeTrueFalse,
			Difficulty:    model.DifficultyEasy,
			CorrectAnswer: "true",
		},
		// Malformed: a choice question with no options survives generation
		// but must not survive validation.
		{
			Text:       "Broken question",
			Type:       model.QuestionTypeMCQ,
			Difficulty: model.DifficultyEasy,
		},
	}

	created, err := svc.SaveDrafts(ctx, "reviewer-1", "sop-7", generated)
	if err != nil {
		t.Fatalf("save drafts failed: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 drafts (one skipped), got %d", len(created))
	}
	for _, q := range created {
		if q.Status != model.StatusDraft {
			t.Errorf("expected draft status, got %q", q.Status)
		}
		if !q.AIGenerated {
			t.Error("expected aiGenerated flag")
		}
		if q.CreatedBy != "reviewer-1" || q.SourceDocumentID != "sop-7" {
			t.Errorf("expected provenance to be recorded, got %q/%q", q.CreatedBy, q.SourceDocumentID)
		}

		stored, err := questionSvc.GetByID(ctx, q.ID)
		if err != nil {
			t.Fatalf("expected draft %s to be readable, got %v", q.ID, err)
		}
		if strings.TrimSpace(stored.Text) == "" {
			t.Error("expected stored text")
		}
	}
}

func TestSaveDraftsNeverSilentlyEmpty(t *testing.T) {
	svc, _ := newGenerationServiceForTest()
	ctx := context.Background()

	if _, err := svc.SaveDrafts(ctx, "reviewer-1", "", nil); !apperr.IsValidation(err) {
		t.Errorf("expected validation error for empty input, got %v", err)
	}

	allBroken := []model.GeneratedQuestion{
		{Text: "no options", Type: model.QuestionTypeMCQ, Difficulty: model.DifficultyEasy},
		{Text: "", Type: model.QuestionTypeTrueFalse, Difficulty: model.DifficultyEasy, CorrectAnswer: "true"},
	}
	if _, err := svc.SaveDrafts(ctx, "reviewer-1", "", allBroken); !apperr.IsGeneration(err) {
		t.Errorf("expected generation error when nothing survives, got %v", err)
	}
}
