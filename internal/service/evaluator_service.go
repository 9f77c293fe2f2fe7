package service

import (
	"strings"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

// EvaluatorService grades submitted answers against their question.
// Evaluation is pure: no storage access, no side effects.
type EvaluatorService struct{}

// NewEvaluatorService creates a new evaluator service
func NewEvaluatorService() *EvaluatorService {
	return &EvaluatorService{}
}

// Evaluate applies the grading rule for the question's type. Unrecognized
// types (including scenario questions, which have no auto-gradable key)
// grade as incorrect rather than guessing.
func (s *EvaluatorService) Evaluate(question *model.Question, submission *model.AnswerSubmission) *model.EvaluationResult {
	if question == nil || submission == nil {
		return &model.EvaluationResult{IsCorrect: false}
	}

	switch question.Type {
	case model.QuestionTypeTrueFalse:
		return s.evaluateTrueFalse(question, submission)
	case model.QuestionTypeFillBlank:
		return s.evaluateFillBlank(question, submission)
	case model.QuestionTypeMCQ:
		return s.evaluateMCQ(question, submission)
	case model.QuestionTypeMCQMulti:
		return s.evaluateMCQMulti(question, submission)
	default:
		return &model.EvaluationResult{IsCorrect: false}
	}
}

// evaluateTrueFalse compares exactly, case-sensitive
func (s *EvaluatorService) evaluateTrueFalse(q *model.Question, sub *model.AnswerSubmission) *model.EvaluationResult {
	if sub.Value == "" || sub.Value != q.CorrectAnswer {
		return &model.EvaluationResult{IsCorrect: false}
	}
	return &model.EvaluationResult{IsCorrect: true, Feedback: q.Explanation}
}

// evaluateFillBlank trims and lowercases both sides. No fuzzy matching.
func (s *EvaluatorService) evaluateFillBlank(q *model.Question, sub *model.AnswerSubmission) *model.EvaluationResult {
	submitted := strings.ToLower(strings.TrimSpace(sub.Value))
	expected := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))
	if submitted == "" || submitted != expected {
		return &model.EvaluationResult{IsCorrect: false}
	}
	return &model.EvaluationResult{IsCorrect: true, Feedback: q.Explanation}
}

// evaluateMCQ looks up the selected option. A wrong pick surfaces that
// option's feedback text; an unknown option id surfaces nothing.
func (s *EvaluatorService) evaluateMCQ(q *model.Question, sub *model.AnswerSubmission) *model.EvaluationResult {
	if sub.Value == "" {
		return &model.EvaluationResult{IsCorrect: false}
	}
	opt := q.OptionByID(sub.Value)
	if opt == nil {
		return &model.EvaluationResult{IsCorrect: false}
	}
	if !opt.IsCorrect {
		return &model.EvaluationResult{IsCorrect: false, Feedback: opt.Feedback}
	}
	return &model.EvaluationResult{IsCorrect: true, Feedback: q.Explanation}
}

// evaluateMCQMulti requires the selected set to equal the correct set
// exactly. No partial credit for subsets or supersets.
func (s *EvaluatorService) evaluateMCQMulti(q *model.Question, sub *model.AnswerSubmission) *model.EvaluationResult {
	if len(sub.SelectedOptionIDs) == 0 {
		return &model.EvaluationResult{IsCorrect: false}
	}

	expected := q.CorrectOptionIDs()
	// A question with no correct options is malformed; never grade it
	// as vacuously correct.
	if len(expected) == 0 {
		return &model.EvaluationResult{IsCorrect: false}
	}

	selected := make(map[string]struct{}, len(sub.SelectedOptionIDs))
	for _, id := range sub.SelectedOptionIDs {
		selected[id] = struct{}{}
	}
	if len(selected) != len(expected) {
		return &model.EvaluationResult{IsCorrect: false}
	}
	for _, id := range expected {
		if _, ok := selected[id]; !ok {
			return &model.EvaluationResult{IsCorrect: false}
		}
	}
	return &model.EvaluationResult{IsCorrect: true, Feedback: q.Explanation}
}
