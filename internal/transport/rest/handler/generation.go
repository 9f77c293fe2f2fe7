package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/excel"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/service"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/transport/rest/middleware"
)

// maxImportBytes caps uploaded workbooks; a question sheet is tiny
const maxImportBytes = 10 << 20

// GenerationHandler handles AI question generation and bulk import
type GenerationHandler struct {
	generationSvc *service.GenerationService
	importer      *excel.Importer
}

// NewGenerationHandler creates a new generation handler
func NewGenerationHandler(generationSvc *service.GenerationService, importer *excel.Importer) *GenerationHandler {
	return &GenerationHandler{
		generationSvc: generationSvc,
		importer:      importer,
	}
}

// SaveDraftsRequest carries reviewed generation output to persist
type SaveDraftsRequest struct {
	SourceDocumentID string                    `json:"sourceDocumentId,omitempty"`
	Questions        []model.GeneratedQuestion `json:"questions"`
}

// Generate proposes questions from source material.
// @Summary      Generate questions
// @Description  Drafts candidate questions from SOP or training text via the AI provider. Nothing is persisted; pair with the drafts endpoint. Reviewer only.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        body  body      model.GenerationRequest  true  "Generation request"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string  "provider failure"
// @Router       /v1/generation [post]
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	generated, err := h.generationSvc.Generate(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": generated})
}

// SaveDrafts persists generated questions as drafts.
// @Summary      Save generated drafts
// @Description  Stores reviewed generation output as draft questions owned by the caller. Reviewer only.
// @Tags         Generation
// @Accept       json
// @Produce      json
// @Param        body  body      SaveDraftsRequest  true  "Questions to save"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Router       /v1/generation/drafts [post]
func (h *GenerationHandler) SaveDrafts(w http.ResponseWriter, r *http.Request) {
	var req SaveDraftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.generationSvc.SaveDrafts(r.Context(), middleware.GetStaffID(r.Context()), req.SourceDocumentID, req.Questions)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"questions": created})
}

// Import bulk-imports a question workbook.
// @Summary      Import a question workbook
// @Description  Uploads an .xlsx file and creates a draft per data row. Row failures are reported, not fatal. Reviewer only.
// @Tags         Generation
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  true  "Question workbook (.xlsx)"
// @Success      200   {object}  excel.ImportResult
// @Failure      400   {object}  map[string]string
// @Router       /v1/import [post]
func (h *GenerationHandler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	result, err := h.importer.ImportReader(r.Context(), file, middleware.GetStaffID(r.Context()), excel.DefaultImportConfig())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
