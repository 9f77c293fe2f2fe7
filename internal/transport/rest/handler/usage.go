package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/service"
)

// UsageHandler handles question-to-context link endpoints
type UsageHandler struct {
	usageSvc *service.UsageService
}

// NewUsageHandler creates a new usage handler
func NewUsageHandler(usageSvc *service.UsageService) *UsageHandler {
	return &UsageHandler{usageSvc: usageSvc}
}

// AttachUsageRequest is the request body for linking a question
type AttachUsageRequest struct {
	QuestionID   string  `json:"questionId"`
	ContextType  string  `json:"contextType"`
	ContextID    string  `json:"contextId"`
	DisplayOrder int     `json:"displayOrder"`
	Required     bool    `json:"required"`
	Weight       float64 `json:"weight,omitempty"`
}

// Attach links a question into a consuming context.
// @Summary      Attach a question
// @Description  Links a question to a training module or SOP quiz. Reviewer only.
// @Tags         Usages
// @Accept       json
// @Produce      json
// @Param        body  body      AttachUsageRequest  true  "Link to create"
// @Success      201   {object}  model.QuestionUsage
// @Failure      404   {object}  map[string]string  "question missing or archived"
// @Router       /v1/usages [post]
func (h *UsageHandler) Attach(w http.ResponseWriter, r *http.Request) {
	var req AttachUsageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := h.usageSvc.Attach(r.Context(), &model.QuestionUsage{
		QuestionID:   req.QuestionID,
		ContextType:  req.ContextType,
		ContextID:    req.ContextID,
		DisplayOrder: req.DisplayOrder,
		Required:     req.Required,
		Weight:       req.Weight,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, link)
}

// ListForContext returns a context's question links in display order.
// @Summary      List context usages
// @Tags         Usages
// @Produce      json
// @Param        contextType  query     string  true  "Context type"
// @Param        contextId    query     string  true  "Context ID"
// @Success      200          {object}  map[string]interface{}
// @Router       /v1/usages [get]
func (h *UsageHandler) ListForContext(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	contextType, contextID := q.Get("contextType"), q.Get("contextId")
	if contextType == "" || contextID == "" {
		writeError(w, http.StatusBadRequest, "contextType and contextId are required")
		return
	}

	links, err := h.usageSvc.ListForContext(r.Context(), contextType, contextID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"usages": links})
}

// ListForQuestion returns every context a question is used in.
// @Summary      List question usages
// @Tags         Usages
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  map[string]interface{}
// @Router       /v1/questions/{id}/usages [get]
func (h *UsageHandler) ListForQuestion(w http.ResponseWriter, r *http.Request) {
	links, err := h.usageSvc.ListForQuestion(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"usages": links})
}

// Detach removes a link.
// @Summary      Detach a question
// @Description  Removes a question-to-context link. The question is untouched. Reviewer only.
// @Tags         Usages
// @Param        id  path  string  true  "Usage ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /v1/usages/{id} [delete]
func (h *UsageHandler) Detach(w http.ResponseWriter, r *http.Request) {
	if err := h.usageSvc.Detach(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
