package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/repository"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/service"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/transport/rest/middleware"
)

// QuestionHandler handles question authoring and review endpoints
type QuestionHandler struct {
	questionSvc *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionSvc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// CreateQuestionRequest is the request body for creating a question
type CreateQuestionRequest struct {
	Text             string                `json:"text"`
	Type             model.QuestionType    `json:"type"`
	Difficulty       model.DifficultyLevel `json:"difficulty"`
	CorrectAnswer    string                `json:"correctAnswer,omitempty"`
	Explanation      string                `json:"explanation,omitempty"`
	Hint             string                `json:"hint,omitempty"`
	Tags             []string              `json:"tags,omitempty"`
	Options          []model.Option        `json:"options,omitempty"`
	SourceDocumentID string                `json:"sourceDocumentId,omitempty"`
}

func (req *CreateQuestionRequest) toQuestion(createdBy string) *model.Question {
	return &model.Question{
		Text:             req.Text,
		Type:             req.Type,
		Difficulty:       req.Difficulty,
		CorrectAnswer:    req.CorrectAnswer,
		Explanation:      req.Explanation,
		Hint:             req.Hint,
		Tags:             req.Tags,
		Options:          req.Options,
		SourceDocumentID: req.SourceDocumentID,
		CreatedBy:        createdBy,
	}
}

// ReviewDecisionRequest carries optional reviewer notes
type ReviewDecisionRequest struct {
	Notes string `json:"notes,omitempty"`
}

// ReplaceOptionsRequest is the request body for replacing a question's options
type ReplaceOptionsRequest struct {
	Options []model.Option `json:"options"`
}

// Create creates a draft question.
// @Summary      Create a question
// @Description  Creates a new question in draft status, owned by the caller.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateQuestionRequest  true  "Question to create"
// @Success      201   {object}  model.Question
// @Failure      400   {object}  map[string]string
// @Router       /v1/questions [post]
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.questionSvc.Create(r.Context(), req.toQuestion(middleware.GetStaffID(r.Context())))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, question)
}

// Get returns one question.
// @Summary      Get a question
// @Tags         Questions
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  model.Question
// @Failure      404  {object}  map[string]string
// @Router       /v1/questions/{id} [get]
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	question, err := h.questionSvc.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

// ListPublished returns published questions for quiz clients.
// @Summary      List published questions
// @Description  Returns the published question bank, optionally filtered by type, difficulty or tag.
// @Tags         Questions
// @Produce      json
// @Param        type        query     string  false  "Question type"
// @Param        difficulty  query     string  false  "Difficulty level"
// @Param        tag         query     string  false  "Tag"
// @Success      200         {object}  map[string]interface{}
// @Router       /v1/questions [get]
func (h *QuestionHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questionSvc.ListPublished(r.Context(), filterFromQuery(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// ListForReview returns questions in any status for the review desk.
// @Summary      List questions for review
// @Description  Returns questions in every status. Reviewer only.
// @Tags         Review
// @Produce      json
// @Param        status      query     string  false  "Workflow status"
// @Param        type        query     string  false  "Question type"
// @Param        difficulty  query     string  false  "Difficulty level"
// @Param        tag         query     string  false  "Tag"
// @Param        createdBy   query     string  false  "Author staff ID"
// @Success      200         {object}  map[string]interface{}
// @Router       /v1/review/questions [get]
func (h *QuestionHandler) ListForReview(w http.ResponseWriter, r *http.Request) {
	filter := filterFromQuery(r)
	filter.Status = model.QuestionStatus(r.URL.Query().Get("status"))
	filter.CreatedBy = r.URL.Query().Get("createdBy")

	questions, err := h.questionSvc.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// Update edits a draft question.
// @Summary      Update a draft question
// @Description  Applies content edits to a draft. Published questions are immutable.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Question ID"
// @Param        body  body      CreateQuestionRequest  true  "New content"
// @Success      200   {object}  model.Question
// @Failure      409   {object}  map[string]string  "not a draft"
// @Router       /v1/questions/{id} [put]
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question := req.toQuestion(middleware.GetStaffID(r.Context()))
	question.ID = mux.Vars(r)["id"]

	updated, err := h.questionSvc.Update(r.Context(), question)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// ReplaceOptions swaps a draft question's option set.
// @Summary      Replace options
// @Description  Replaces the full option set of a draft choice question.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Question ID"
// @Param        body  body      ReplaceOptionsRequest  true  "New options"
// @Success      200   {object}  model.Question
// @Failure      409   {object}  map[string]string
// @Router       /v1/questions/{id}/options [put]
func (h *QuestionHandler) ReplaceOptions(w http.ResponseWriter, r *http.Request) {
	var req ReplaceOptionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.questionSvc.ReplaceOptions(r.Context(), mux.Vars(r)["id"], req.Options)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

// Delete removes a draft question.
// @Summary      Delete a draft question
// @Description  Deletes a draft. Questions past draft are archived, never deleted.
// @Tags         Questions
// @Param        id  path  string  true  "Question ID"
// @Success      204
// @Failure      409  {object}  map[string]string
// @Router       /v1/questions/{id} [delete]
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.questionSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Submit moves a draft into review.
// @Summary      Submit for review
// @Tags         Review
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  model.Question
// @Failure      409  {object}  map[string]string
// @Router       /v1/questions/{id}/submit [post]
func (h *QuestionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	question, err := h.questionSvc.SubmitForReview(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

// Approve publishes a question under review.
// @Summary      Approve a question
// @Description  Publishes a question pending review. Reviewer only.
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true   "Question ID"
// @Param        body  body      ReviewDecisionRequest  false  "Optional notes"
// @Success      200   {object}  model.Question
// @Failure      409   {object}  map[string]string
// @Router       /v1/questions/{id}/approve [post]
func (h *QuestionHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req ReviewDecisionRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	question, err := h.questionSvc.Approve(r.Context(), mux.Vars(r)["id"], middleware.GetStaffID(r.Context()), req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

// Reject sends a question under review back to draft.
// @Summary      Reject a question
// @Description  Returns a pending question to draft. Notes are required. Reviewer only.
// @Tags         Review
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Question ID"
// @Param        body  body      ReviewDecisionRequest  true  "Rejection notes"
// @Success      200   {object}  model.Question
// @Failure      400   {object}  map[string]string  "missing notes"
// @Router       /v1/questions/{id}/reject [post]
func (h *QuestionHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req ReviewDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	question, err := h.questionSvc.Reject(r.Context(), mux.Vars(r)["id"], middleware.GetStaffID(r.Context()), req.Notes)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

// Archive retires a question.
// @Summary      Archive a question
// @Description  Retires a question from any status. Terminal. Reviewer only.
// @Tags         Review
// @Produce      json
// @Param        id   path      string  true  "Question ID"
// @Success      200  {object}  model.Question
// @Failure      409  {object}  map[string]string  "already archived"
// @Router       /v1/questions/{id}/archive [post]
func (h *QuestionHandler) Archive(w http.ResponseWriter, r *http.Request) {
	question, err := h.questionSvc.Archive(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, question)
}

func filterFromQuery(r *http.Request) repository.QuestionFilter {
	q := r.URL.Query()
	return repository.QuestionFilter{
		Type:       model.QuestionType(q.Get("type")),
		Difficulty: model.DifficultyLevel(q.Get("difficulty")),
		Tag:        q.Get("tag"),
	}
}
