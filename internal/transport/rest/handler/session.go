package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/service"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/transport/rest/middleware"
)

// SessionHandler handles quiz session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// StartSessionRequest is the request body for starting a session
type StartSessionRequest struct {
	QuizType         string   `json:"quizType"`
	TargetEntityID   string   `json:"targetEntityId,omitempty"`
	TimeLimitSeconds int      `json:"timeLimitSeconds,omitempty"`
	PassingScore     *float64 `json:"passingScore,omitempty"`
}

// Start opens a new quiz session for the caller.
// @Summary      Start a session
// @Description  Opens a scored quiz session. Aggregates stay zero until completion.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      StartSessionRequest  true  "Session parameters"
// @Success      201   {object}  model.QuizSession
// @Failure      400   {object}  map[string]string
// @Router       /v1/sessions [post]
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessionSvc.Start(r.Context(), &model.QuizSession{
		UserID:           middleware.GetStaffID(r.Context()),
		QuizType:         req.QuizType,
		TargetEntityID:   req.TargetEntityID,
		TimeLimitSeconds: req.TimeLimitSeconds,
		PassingScore:     req.PassingScore,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// Complete finalizes a session with its results.
// @Summary      Complete a session
// @Description  Scores and closes a session. Completion is terminal; a second call conflicts.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Session ID"
// @Param        body  body      model.SessionResults  true  "Aggregate results"
// @Success      200   {object}  model.QuizSession
// @Failure      409   {object}  map[string]string  "already completed"
// @Router       /v1/sessions/{id}/complete [post]
func (h *SessionHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var results model.SessionResults
	if err := json.NewDecoder(r.Body).Decode(&results); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.sessionSvc.Complete(r.Context(), mux.Vars(r)["id"], &results)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// Get returns one session.
// @Summary      Get a session
// @Tags         Sessions
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  model.QuizSession
// @Failure      404  {object}  map[string]string
// @Router       /v1/sessions/{id} [get]
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessionSvc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// ListMine returns the caller's recent sessions.
// @Summary      List my sessions
// @Tags         Sessions
// @Produce      json
// @Param        limit  query     int  false  "Max sessions to return"  default(20)
// @Success      200    {object}  map[string]interface{}
// @Router       /v1/me/sessions [get]
func (h *SessionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	limit := int64(20)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}

	sessions, err := h.sessionSvc.ListByUser(r.Context(), middleware.GetStaffID(r.Context()), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}
