// Package excel bulk-imports questions from operator spreadsheets.
package excel

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/apperr"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/service"
)

// ImportConfig maps spreadsheet columns to question fields
type ImportConfig struct {
	SheetName         string
	StartRow          int // 1-based; rows above it are headers
	TextColumn        string
	TypeColumn        string
	DifficultyColumn  string
	AnswerColumn      string // true_false / fill_blank expected answer
	OptionsColumn     string // pipe-separated, leading * marks correct, ::text adds feedback
	HintColumn        string
	ExplanationColumn string
	TagsColumn        string // comma-separated
}

// DefaultImportConfig returns the standard question sheet layout
func DefaultImportConfig() ImportConfig {
	return ImportConfig{
		SheetName:         "Sheet1",
		StartRow:          2,
		TextColumn:        "A",
		TypeColumn:        "B",
		DifficultyColumn:  "C",
		AnswerColumn:      "D",
		OptionsColumn:     "E",
		HintColumn:        "F",
		ExplanationColumn: "G",
		TagsColumn:        "H",
	}
}

// ImportResult summarizes one import run
type ImportResult struct {
	TotalRows int      `json:"totalRows"`
	Created   int      `json:"created"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors"`
}

// Importer reads question spreadsheets and creates drafts through the
// question service, so imported rows face the same validation and review
// workflow as hand-written questions.
type Importer struct {
	questionSvc *service.QuestionService
}

// NewImporter creates a new importer
func NewImporter(questionSvc *service.QuestionService) *Importer {
	return &Importer{questionSvc: questionSvc}
}

// ImportFile imports every data row of the configured sheet as a draft
// question owned by createdBy. Rows that fail validation are skipped and
// reported; storage failures abort the run.
func (im *Importer) ImportFile(ctx context.Context, path, createdBy string, cfg ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	return im.importSheet(ctx, f, createdBy, cfg)
}

// ImportReader imports from an uploaded workbook stream, same semantics
// as ImportFile.
func (im *Importer) ImportReader(ctx context.Context, r io.Reader, createdBy string, cfg ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	return im.importSheet(ctx, f, createdBy, cfg)
}

func (im *Importer) importSheet(ctx context.Context, f *excelize.File, createdBy string, cfg ImportConfig) (*ImportResult, error) {
	rows, err := f.GetRows(cfg.SheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", cfg.SheetName, err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		if i < cfg.StartRow-1 {
			continue
		}
		rowNum := i + 1
		if rowEmpty(row) {
			continue
		}
		result.TotalRows++

		q := rowToQuestion(row, cfg, createdBy)
		if _, err := im.questionSvc.Create(ctx, q); err != nil {
			if apperr.IsValidation(err) {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
				continue
			}
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		result.Created++
	}

	return result, nil
}

// rowToQuestion builds a draft question from one spreadsheet row. Type
// and difficulty go through the same synonym normalization as generated
// questions, so operator shorthand like "multiple choice" works.
func rowToQuestion(row []string, cfg ImportConfig, createdBy string) *model.Question {
	q := &model.Question{
		Text:          cell(row, cfg.TextColumn),
		Type:          model.NormalizeQuestionType(cell(row, cfg.TypeColumn)),
		Difficulty:    model.NormalizeDifficulty(cell(row, cfg.DifficultyColumn)),
		CorrectAnswer: cell(row, cfg.AnswerColumn),
		Hint:          cell(row, cfg.HintColumn),
		Explanation:   cell(row, cfg.ExplanationColumn),
		Tags:          splitTags(cell(row, cfg.TagsColumn)),
		CreatedBy:     createdBy,
	}
	if q.Type == model.QuestionTypeMCQ || q.Type == model.QuestionTypeMCQMulti {
		q.Options = parseOptions(cell(row, cfg.OptionsColumn))
		q.CorrectAnswer = ""
	} else {
		q.Options = nil
	}
	return q
}

// parseOptions parses the option cell grammar:
//
//	Front desk registry::check the registry first|*Duty manager log
//
// Options are pipe-separated, a leading * marks a correct option and an
// optional ::suffix carries wrong-answer feedback.
func parseOptions(raw string) []model.Option {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, "|")
	options := make([]model.Option, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		opt := model.Option{}
		if strings.HasPrefix(part, "*") {
			opt.IsCorrect = true
			part = strings.TrimSpace(strings.TrimPrefix(part, "*"))
		}
		if text, feedback, ok := strings.Cut(part, "::"); ok {
			opt.Text = strings.TrimSpace(text)
			opt.Feedback = strings.TrimSpace(feedback)
		} else {
			opt.Text = part
		}
		options = append(options, opt)
	}
	if len(options) == 0 {
		return nil
	}
	return options
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// cell returns the trimmed value at a column letter, or "" past the end
// of a short row.
func cell(row []string, column string) string {
	idx := columnToIndex(column)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	if column == "" {
		return -1
	}
	index := 0
	for i := 0; i < len(column); i++ {
		index = index*26 + int(column[i]-'A'+1)
	}
	return index - 1
}
