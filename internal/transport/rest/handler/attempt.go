package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/service"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/transport/rest/middleware"
)

// AttemptHandler handles answer submission endpoints
type AttemptHandler struct {
	attemptSvc *service.AttemptService
}

// NewAttemptHandler creates a new attempt handler
func NewAttemptHandler(attemptSvc *service.AttemptService) *AttemptHandler {
	return &AttemptHandler{attemptSvc: attemptSvc}
}

// Record evaluates and records an answer.
// @Summary      Submit an answer
// @Description  Evaluates the caller's answer against the question and records the attempt.
// @Tags         Attempts
// @Accept       json
// @Produce      json
// @Param        body  body      model.AnswerSubmission  true  "Answer submission"
// @Success      200   {object}  model.EvaluationResult
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string  "question not found or archived"
// @Router       /v1/attempts [post]
func (h *AttemptHandler) Record(w http.ResponseWriter, r *http.Request) {
	var sub model.AnswerSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.attemptSvc.Record(r.Context(), middleware.GetStaffID(r.Context()), &sub)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Get returns one attempt.
// @Summary      Get an attempt
// @Tags         Attempts
// @Produce      json
// @Param        id   path      string  true  "Attempt ID"
// @Success      200  {object}  model.Attempt
// @Failure      404  {object}  map[string]string
// @Router       /v1/attempts/{id} [get]
func (h *AttemptHandler) Get(w http.ResponseWriter, r *http.Request) {
	attempt, err := h.attemptSvc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, attempt)
}

// ListMine returns the caller's attempt history.
// @Summary      List my attempts
// @Tags         Attempts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /v1/me/attempts [get]
func (h *AttemptHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.attemptSvc.ListByUser(r.Context(), middleware.GetStaffID(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"attempts": attempts})
}

// ListBySession returns every attempt recorded under a session.
// @Summary      List session attempts
// @Tags         Sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /v1/sessions/{id}/attempts [get]
func (h *AttemptHandler) ListBySession(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.attemptSvc.ListBySession(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"attempts": attempts})
}
