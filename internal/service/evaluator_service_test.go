package service

import (
	"testing"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

func tfQuestion(correct string) *model.Question {
	return &model.Question{
		ID:            "q-tf",
		Type:          model.QuestionTypeTrueFalse,
		CorrectAnswer: correct,
		Explanation:   "fire doors stay closed",
	}
}

func fillQuestion(correct string) *model.Question {
	return &model.Question{
		ID:            "q-fill",
		Type:          model.QuestionTypeFillBlank,
		CorrectAnswer: correct,
		Explanation:   "the master key is logged at the desk",
	}
}

func mcqQuestion() *model.Question {
	return &model.Question{
		ID:          "q-mcq",
		Type:        model.QuestionTypeMCQ,
		Explanation: "guests are escorted, never pointed",
		Options: []model.Option{
			{ID: "A", Text: "Point at the lifts", Feedback: "try again"},
			{ID: "B", Text: "Escort the guest", IsCorrect: true},
		},
	}
}

func multiQuestion() *model.Question {
	return &model.Question{
		ID:          "q-multi",
		Type:        model.QuestionTypeMCQMulti,
		Explanation: "all three steps are mandatory",
		Options: []model.Option{
			{ID: "A", IsCorrect: true},
			{ID: "B", IsCorrect: true},
			{ID: "C", IsCorrect: true},
			{ID: "D", Feedback: "not part of the procedure"},
		},
	}
}

func TestEvaluateTrueFalse(t *testing.T) {
	ev := NewEvaluatorService()
	tests := []struct {
		name        string
		correct     string
		submitted   string
		wantCorrect bool
	}{
		{"exact match", "true", "true", true},
		{"case mismatch is wrong", "true", "True", false},
		{"wrong value", "true", "false", false},
		{"empty submission", "true", "", false},
		{"whitespace is not trimmed", "true", "true ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ev.Evaluate(tfQuestion(tt.correct), &model.AnswerSubmission{QuestionID: "q-tf", Value: tt.submitted})
			if result.IsCorrect != tt.wantCorrect {
				t.Errorf("expected isCorrect=%v, got %v", tt.wantCorrect, result.IsCorrect)
			}
			if tt.wantCorrect && result.Feedback != "fire doors stay closed" {
				t.Errorf("expected explanation as feedback, got %q", result.Feedback)
			}
		})
	}
}

func TestEvaluateFillBlank(t *testing.T) {
	ev := NewEvaluatorService()
	tests := []struct {
		name        string
		correct     string
		submitted   string
		wantCorrect bool
	}{
		{"exact match", "Yes", "Yes", true},
		{"surrounding whitespace trimmed", "Yes", "  Yes ", true},
		{"case folded", "Yes", "yes", true},
		{"both folded and trimmed", "  REGISTRY ", "registry", true},
		{"different word", "Yes", "No", false},
		{"internal spacing matters", "front desk", "frontdesk", false},
		{"empty submission", "Yes", "", false},
		{"whitespace-only submission", "Yes", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ev.Evaluate(fillQuestion(tt.correct), &model.AnswerSubmission{QuestionID: "q-fill", Value: tt.submitted})
			if result.IsCorrect != tt.wantCorrect {
				t.Errorf("expected isCorrect=%v, got %v", tt.wantCorrect, result.IsCorrect)
			}
		})
	}
}

func TestEvaluateMCQ(t *testing.T) {
	ev := NewEvaluatorService()
	q := mcqQuestion()

	wrong := ev.Evaluate(q, &model.AnswerSubmission{QuestionID: q.ID, Value: "A"})
	if wrong.IsCorrect {
		t.Error("expected wrong option to be incorrect")
	}
	if wrong.Feedback != "try again" {
		t.Errorf("expected the wrong option's feedback, got %q", wrong.Feedback)
	}

	right := ev.Evaluate(q, &model.AnswerSubmission{QuestionID: q.ID, Value: "B"})
	if !right.IsCorrect {
		t.Error("expected correct option to be correct")
	}
	if right.Feedback != q.Explanation {
		t.Errorf("expected question explanation as feedback, got %q", right.Feedback)
	}

	unknown := ev.Evaluate(q, &model.AnswerSubmission{QuestionID: q.ID, Value: "Z"})
	if unknown.IsCorrect {
		t.Error("expected unknown option id to be incorrect")
	}
	if unknown.Feedback != "" {
		t.Errorf("expected no feedback for unknown option id, got %q", unknown.Feedback)
	}

	empty := ev.Evaluate(q, &model.AnswerSubmission{QuestionID: q.ID})
	if empty.IsCorrect {
		t.Error("expected empty submission to be incorrect")
	}
}

func TestEvaluateMCQMulti(t *testing.T) {
	ev := NewEvaluatorService()
	tests := []struct {
		name        string
		selected    []string
		wantCorrect bool
	}{
		{"exact set", []string{"A", "B", "C"}, true},
		{"order does not matter", []string{"C", "A", "B"}, true},
		{"duplicates collapse", []string{"A", "A", "B", "C"}, true},
		{"subset is wrong", []string{"A", "B"}, false},
		{"superset is wrong", []string{"A", "B", "C", "D"}, false},
		{"disjoint is wrong", []string{"D"}, false},
		{"empty submission", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ev.Evaluate(multiQuestion(), &model.AnswerSubmission{QuestionID: "q-multi", SelectedOptionIDs: tt.selected})
			if result.IsCorrect != tt.wantCorrect {
				t.Errorf("expected isCorrect=%v, got %v", tt.wantCorrect, result.IsCorrect)
			}
		})
	}
}

func TestEvaluateMCQMultiNoCorrectOptions(t *testing.T) {
	ev := NewEvaluatorService()
	q := &model.Question{
		ID:   "q-broken",
		Type: model.QuestionTypeMCQMulti,
		Options: []model.Option{
			{ID: "A"},
			{ID: "B"},
		},
	}

	// A malformed question must never grade as vacuously correct.
	for _, selected := range [][]string{nil, {"A"}, {"A", "B"}} {
		result := ev.Evaluate(q, &model.AnswerSubmission{QuestionID: q.ID, SelectedOptionIDs: selected})
		if result.IsCorrect {
			t.Errorf("expected selection %v against a no-correct-option question to be incorrect", selected)
		}
	}
}

func TestEvaluateUnknownTypes(t *testing.T) {
	ev := NewEvaluatorService()

	scenario := &model.Question{
		ID:            "q-scenario",
		Type:          model.QuestionTypeScenario,
		CorrectAnswer: "escalate to the duty manager",
	}
	result := ev.Evaluate(scenario, &model.AnswerSubmission{QuestionID: scenario.ID, Value: "escalate to the duty manager"})
	if result.IsCorrect {
		t.Error("expected scenario questions to never auto-grade correct")
	}

	bogus := &model.Question{ID: "q-bogus", Type: "essay"}
	if ev.Evaluate(bogus, &model.AnswerSubmission{QuestionID: bogus.ID, Value: "anything"}).IsCorrect {
		t.Error("expected unrecognized type to be incorrect")
	}

	if ev.Evaluate(nil, &model.AnswerSubmission{}).IsCorrect {
		t.Error("expected nil question to be incorrect")
	}
	if ev.Evaluate(mcqQuestion(), nil).IsCorrect {
		t.Error("expected nil submission to be incorrect")
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	ev := NewEvaluatorService()
	questions := []*model.Question{
		tfQuestion("true"),
		fillQuestion("Yes"),
		mcqQuestion(),
		multiQuestion(),
	}
	submissions := []*model.AnswerSubmission{
		{Value: "true"},
		{Value: " yes "},
		{Value: "A"},
		{SelectedOptionIDs: []string{"A", "B", "C"}},
	}

	for i, q := range questions {
		first := ev.Evaluate(q, submissions[i])
		second := ev.Evaluate(q, submissions[i])
		if first.IsCorrect != second.IsCorrect || first.Feedback != second.Feedback {
			t.Errorf("question %s: expected identical results across calls, got %+v then %+v", q.ID, first, second)
		}
	}
}
