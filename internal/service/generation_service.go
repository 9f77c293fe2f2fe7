package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/apperr"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/config"
	"github.com/Saifeldin2401/prime-hotels-intranet-sub007/internal/model"
)

// GenerationService drafts questions from source material via the Gemini
// API. Output always lands as drafts for human review, never published.
type GenerationService struct {
	cfg         *config.AIConfig
	client      *resty.Client
	questionSvc *QuestionService
}

// NewGenerationService creates a new generation service
func NewGenerationService(cfg *config.AIConfig, questionSvc *QuestionService) *GenerationService {
	client := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutMS) * time.Millisecond).
		SetRetryCount(2)
	return &GenerationService{
		cfg:         cfg,
		client:      client,
		questionSvc: questionSvc,
	}
}

// Generate produces candidate questions from the request's source content.
// Provider failures and unparsable output surface as errors; an
// unconfigured provider falls back to deterministic mock output so
// development environments still work end to end.
func (s *GenerationService) Generate(ctx context.Context, req *model.GenerationRequest) ([]model.GeneratedQuestion, error) {
	if req == nil || strings.TrimSpace(req.SourceContent) == "" {
		return nil, apperr.Invalid("sourceContent", "must not be empty")
	}
	if req.Count <= 0 {
		req.Count = 5
	}
	if req.Count > 20 {
		return nil, apperr.Invalid("count", "must not exceed 20 per request")
	}

	if !s.cfg.IsEnabled() {
		return s.mockGenerate(req), nil
	}

	prompt := s.buildPrompt(req)
	raw, err := s.callProvider(ctx, prompt)
	if err != nil {
		return nil, apperr.Generation("provider call failed", err)
	}

	payload := extractJSONArray(raw)
	if payload == "" {
		return nil, apperr.Generation("no JSON array in provider output", nil)
	}

	var generated []model.GeneratedQuestion
	if err := json.Unmarshal([]byte(payload), &generated); err != nil {
		return nil, apperr.Generation("unparsable provider output", err)
	}
	if len(generated) == 0 {
		return nil, apperr.Generation("provider returned no questions", nil)
	}

	for i := range generated {
		normalizeGenerated(&generated[i])
	}
	return generated, nil
}

// SaveDrafts persists generated questions through the question store.
// Individually invalid questions are skipped with a warning; producing
// nothing at all is an error, not a silent empty result.
func (s *GenerationService) SaveDrafts(ctx context.Context, authorID, sourceDocumentID string, generated []model.GeneratedQuestion) ([]*model.Question, error) {
	if len(generated) == 0 {
		return nil, apperr.Invalid("questions", "must not be empty")
	}

	created := make([]*model.Question, 0, len(generated))
	for i, g := range generated {
		q := &model.Question{
			Text:             g.Text,
			Type:             g.Type,
			Difficulty:       g.Difficulty,
			CorrectAnswer:    g.CorrectAnswer,
			Explanation:      g.Explanation,
			Hint:             g.Hint,
			Tags:             g.Tags,
			Options:          toOptions(g.Options),
			AIGenerated:      true,
			SourceDocumentID: sourceDocumentID,
			CreatedBy:        authorID,
		}
		saved, err := s.questionSvc.Create(ctx, q)
		if err != nil {
			if apperr.IsValidation(err) {
				slog.Warn("skipping invalid generated question", "index", i, "error", err)
				continue
			}
			return nil, err
		}
		created = append(created, saved)
	}

	if len(created) == 0 {
		return nil, apperr.Generation("no generated question survived validation", nil)
	}
	return created, nil
}

// callProvider makes a generateContent request and returns the model text
func (s *GenerationService) callProvider(ctx context.Context, prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]string{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}

	var providerResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", s.cfg.APIKey).
		SetBody(reqBody).
		SetResult(&providerResp).
		Post(s.cfg.Endpoint())
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode())
	}

	if len(providerResp.Candidates) > 0 && len(providerResp.Candidates[0].Content.Parts) > 0 {
		return providerResp.Candidates[0].Content.Parts[0].Text, nil
	}
	return "", fmt.Errorf("empty response from provider")
}

func (s *GenerationService) buildPrompt(req *model.GenerationRequest) string {
	types := req.Types
	if len(types) == 0 {
		types = []model.QuestionType{
			model.QuestionTypeMCQ,
			model.QuestionTypeMCQMulti,
			model.QuestionTypeTrueFalse,
			model.QuestionTypeFillBlank,
		}
	}
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	difficulty := "medium"
	if req.Difficulty != "" {
		difficulty = string(model.NormalizeDifficulty(req.Difficulty))
	}

	extras := ""
	if req.IncludeHints {
		extras += "Include a short \"hint\" for every question.\n"
	}
	if req.IncludeExplanations {
		extras += "Include an \"explanation\" shown after a correct answer.\n"
	}

	return fmt.Sprintf(`You are writing quiz questions for hotel staff training. Return ONLY a valid JSON array matching this schema:
[
  {
    "text": "question text",
    "type": "one of: %s",
    "difficulty": "%s",
    "correct_answer": "required for true_false (\"true\" or \"false\") and fill_blank (the expected word or phrase)",
    "explanation": "optional",
    "hint": "optional",
    "tags": ["topic tags"],
    "options": [
      {"text": "choice text", "is_correct": true, "feedback": "shown when this wrong choice is picked"}
    ]
  }
]

Rules:
1. Generate exactly %d questions grounded in the source material below. Do not invent facts.
2. "options" only for mcq and mcq_multi; every such question needs at least one option with "is_correct": true. mcq has exactly one correct option, mcq_multi has two or more.
3. For other types omit "options" and set "correct_answer".
4. Wrong options should carry a short corrective "feedback".
%s
Source material:
%s`,
		strings.Join(typeNames, ", "), difficulty, req.Count, extras, req.SourceContent)
}

// mockGenerate returns deterministic drafts when no provider is configured
func (s *GenerationService) mockGenerate(req *model.GenerationRequest) []model.GeneratedQuestion {
	topic := strings.Join(strings.Fields(req.SourceContent), " ")
	runes := []rune(topic)
	if len(runes) > 60 {
		topic = string(runes[:60])
	}

	types := req.Types
	if len(types) == 0 {
		types = []model.QuestionType{
			model.QuestionTypeMCQ,
			model.QuestionTypeTrueFalse,
			model.QuestionTypeFillBlank,
		}
	}
	difficulty := model.NormalizeDifficulty(req.Difficulty)

	out := make([]model.GeneratedQuestion, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		g := model.GeneratedQuestion{
			Text:       fmt.Sprintf("Mock question %d about: %s", i+1, topic),
			Type:       types[i%len(types)],
			Difficulty: difficulty,
			Tags:       []string{"mock"},
		}
		switch g.Type {
		case model.QuestionTypeMCQ:
			g.Options = []model.GeneratedOption{
				{Text: "The documented procedure", IsCorrect: true},
				{Text: "Whatever seems fastest", Feedback: "Speed never overrides the documented procedure."},
				{Text: "Ask a colleague later", Feedback: "Check the procedure first, then escalate."},
			}
		case model.QuestionTypeMCQMulti:
			g.Options = []model.GeneratedOption{
				{Text: "Log the incident", IsCorrect: true},
				{Text: "Notify the duty manager", IsCorrect: true},
				{Text: "Ignore it if the guest seems calm", Feedback: "Every incident is logged regardless of guest reaction."},
			}
		case model.QuestionTypeTrueFalse:
			g.CorrectAnswer = "true"
		case model.QuestionTypeFillBlank:
			g.CorrectAnswer = "procedure"
		default:
			g.CorrectAnswer = "Follow the standard operating procedure and escalate to the duty manager."
		}
		if req.IncludeHints {
			g.Hint = "Check the source material."
		}
		if req.IncludeExplanations {
			g.Explanation = "Mock output - configure GEMINI_API_KEY for real generation."
		}
		out = append(out, g)
	}
	return out
}

// normalizeGenerated canonicalizes a provider question in place: synonym
// type and difficulty names collapse to the canonical enums, and answer
// fields that do not belong to the resolved type are cleared.
func normalizeGenerated(g *model.GeneratedQuestion) {
	g.Text = strings.TrimSpace(g.Text)
	g.Type = model.NormalizeQuestionType(string(g.Type))
	g.Difficulty = model.NormalizeDifficulty(string(g.Difficulty))
	if g.Type == model.QuestionTypeMCQ || g.Type == model.QuestionTypeMCQMulti {
		g.CorrectAnswer = ""
	} else {
		g.Options = nil
		g.CorrectAnswer = strings.TrimSpace(g.CorrectAnswer)
	}
}

func toOptions(generated []model.GeneratedOption) []model.Option {
	if len(generated) == 0 {
		return nil
	}
	options := make([]model.Option, len(generated))
	for i, g := range generated {
		options[i] = model.Option{
			Text:      g.Text,
			IsCorrect: g.IsCorrect,
			Feedback:  g.Feedback,
		}
	}
	return options
}

// extractJSONArray returns the first complete JSON array in s, tolerating
// markdown fences or prose around it. String-aware so brackets inside
// quoted values do not end the match.
func extractJSONArray(s string) string {
	start := strings.IndexByte(s, '[')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
