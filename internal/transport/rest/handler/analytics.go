package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/service"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/transport/rest/middleware"
)

// AnalyticsHandler handles stats, daily challenge and leaderboard endpoints
type AnalyticsHandler struct {
	analyticsSvc *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsSvc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// QuizOptionView is an option stripped of its answer key
type QuizOptionView struct {
	ID           string `json:"id"`
	Text         string `json:"text"`
	DisplayOrder int    `json:"displayOrder"`
}

// QuizQuestionView is a question as served to quiz takers: no correct
// answer, no option flags, no explanation until after the attempt.
type QuizQuestionView struct {
	ID         string                `json:"id"`
	Text       string                `json:"text"`
	Type       model.QuestionType    `json:"type"`
	Difficulty model.DifficultyLevel `json:"difficulty"`
	Hint       string                `json:"hint,omitempty"`
	Tags       []string              `json:"tags,omitempty"`
	Options    []QuizOptionView      `json:"options,omitempty"`
}

func toQuizView(q *model.Question) QuizQuestionView {
	view := QuizQuestionView{
		ID:         q.ID,
		Text:       q.Text,
		Type:       q.Type,
		Difficulty: q.Difficulty,
		Hint:       q.Hint,
		Tags:       q.Tags,
	}
	for _, opt := range q.Options {
		view.Options = append(view.Options, QuizOptionView{
			ID:           opt.ID,
			Text:         opt.Text,
			DisplayOrder: opt.DisplayOrder,
		})
	}
	return view
}

// QuestionStats returns aggregate analytics for one question.
// @Summary      Question analytics
// @Description  Accuracy, timing and hint rates across every attempt at the question.
// @Tags         Analytics
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  model.QuestionAnalytics
// @Router       /v1/questions/{id}/analytics [get]
func (h *AnalyticsHandler) QuestionStats(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.analyticsSvc.QuestionAnalytics(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, analytics)
}

// MyStats returns the caller's accuracy rates and day streak.
// @Summary      My stats
// @Description  The caller's rates across all attempts plus their consecutive-day streak.
// @Tags         Analytics
// @Produce      json
// @Success      200  {object}  model.UserStats
// @Router       /v1/me/stats [get]
func (h *AnalyticsHandler) MyStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analyticsSvc.UserStats(r.Context(), middleware.GetStaffID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// ChallengeStatus reports the caller's progress on today's challenge.
// @Summary      Daily challenge status
// @Tags         Challenge
// @Produce      json
// @Success      200  {object}  model.DailyChallengeStatus
// @Router       /v1/challenge/status [get]
func (h *AnalyticsHandler) ChallengeStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.analyticsSvc.DailyChallengeStatus(r.Context(), middleware.GetStaffID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// ChallengeQuestions returns today's challenge set without answer keys.
// @Summary      Daily challenge questions
// @Description  Today's pinned question set, stripped of correct answers and explanations.
// @Tags         Challenge
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /v1/challenge/questions [get]
func (h *AnalyticsHandler) ChallengeQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.analyticsSvc.DailyChallengeQuestions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	views := make([]QuizQuestionView, len(questions))
	for i, q := range questions {
		views[i] = toQuizView(q)
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": views})
}

// Leaderboard returns the top earners for a quiz type.
// @Summary      Leaderboard
// @Tags         Leaderboards
// @Produce      json
// @Param        quizType  path      string  true   "Quiz type"
// @Param        limit     query     int     false  "Max entries"  default(10)
// @Success      200       {object}  map[string]interface{}
// @Router       /v1/leaderboards/{quizType} [get]
func (h *AnalyticsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	entries, err := h.analyticsSvc.Leaderboard(r.Context(), mux.Vars(r)["quizType"], limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"entries": entries})
}

// MyRank returns the caller's leaderboard position.
// @Summary      My leaderboard rank
// @Description  The caller's 1-indexed rank for a quiz type, -1 when unranked.
// @Tags         Leaderboards
// @Produce      json
// @Param        quizType  path      string  true  "Quiz type"
// @Success      200       {object}  map[string]interface{}
// @Router       /v1/leaderboards/{quizType}/me [get]
func (h *AnalyticsHandler) MyRank(w http.ResponseWriter, r *http.Request) {
	quizType := mux.Vars(r)["quizType"]
	rank, err := h.analyticsSvc.UserRank(r.Context(), quizType, middleware.GetStaffID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"quizType": quizType, "rank": rank})
}
