package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Quizzy/config"
	"github.com/lshigami/Quizzy/internal/dto"
	"github.com/lshigami/Quizzy/internal/model"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

var ErrGeneratorUnavailable = errors.New("question generator is not configured (GEMINI_API_KEY is empty)")

const maxGeneratedQuestions = 50

type GenerateRequest struct {
	Category   string
	Difficulty model.Difficulty
	Count      int
}

// QuestionGeneratorService drafts new multiple-choice questions with Gemini.
type QuestionGeneratorService interface {
	GenerateQuestions(ctx context.Context, req GenerateRequest) ([]dto.QuestionImportDTO, error)
}

type questionGeneratorService struct {
	client *genai.GenerativeModel
}

func NewQuestionGeneratorService(ctx context.Context, cfg *config.Config) (QuestionGeneratorService, error) {
	if cfg.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. QuestionGeneratorService will be non-functional.")
		return &questionGeneratorService{}, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	gm := client.GenerativeModel(cfg.Gemini.Model)
	gm.ResponseMIMEType = "application/json"
	return &questionGeneratorService{client: gm}, nil
}

func (s *questionGeneratorService) GenerateQuestions(ctx context.Context, req GenerateRequest) ([]dto.QuestionImportDTO, error) {
	if s.client == nil {
		return nil, ErrGeneratorUnavailable
	}
	if req.Count <= 0 || req.Count > maxGeneratedQuestions {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", maxGeneratedQuestions, req.Count)
	}
	if strings.TrimSpace(req.Category) == "" {
		req.Category = model.DefaultCategory
	}
	if !req.Difficulty.Valid() {
		req.Difficulty = model.DifficultyMedium
	}

	resp, err := s.client.GenerateContent(ctx, genai.Text(buildGenerationPrompt(req)))
	if err != nil {
		log.Error().Err(err).Str("category", req.Category).Msg("Gemini API error during question generation")
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini returned no content")
	}
	var raw strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			raw.WriteString(string(txt))
		}
	}

	items, err := parseGeneratedQuestions(raw.String(), req)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw.String()).Msg("Failed to parse generated questions")
		return nil, err
	}
	log.Info().Str("category", req.Category).Int("requested", req.Count).Int("accepted", len(items)).Msg("Questions generated")
	return items, nil
}

func buildGenerationPrompt(req GenerateRequest) string {
	var b strings.Builder
	b.WriteString("You are writing questions for a general-knowledge multiple-choice quiz.\n")
	fmt.Fprintf(&b, "Write %d new questions in the category %q at %s difficulty.\n\n", req.Count, req.Category, req.Difficulty)
	b.WriteString("Rules:\n")
	b.WriteString("- Each question has exactly four short choices.\n")
	b.WriteString("- Exactly one choice is correct and correctAnswer repeats it verbatim.\n")
	b.WriteString("- Do not repeat questions.\n\n")
	b.WriteString("Reply with a JSON array only, each element shaped as:\n")
	b.WriteString(`{"questionText": "...", "choices": ["...", "...", "...", "..."], "correctAnswer": "..."}`)
	b.WriteString("\n")
	return b.String()
}

// parseGeneratedQuestions decodes the model output, dropping entries whose
// correct answer is not one of their choices. Category and difficulty always
// come from the request.
func parseGeneratedQuestions(raw string, req GenerateRequest) ([]dto.QuestionImportDTO, error) {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}
	items, err := ParseQuestionsJSON([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("decode generated questions: %w", err)
	}

	accepted := make([]dto.QuestionImportDTO, 0, len(items))
	for _, item := range items {
		item.QuestionText = strings.TrimSpace(item.QuestionText)
		if item.QuestionText == "" || len(item.Choices) < 2 {
			continue
		}
		q := model.Question{Choices: item.Choices}
		if !q.HasChoice(item.CorrectAnswer) {
			log.Warn().Str("question", item.QuestionText).Str("correctAnswer", item.CorrectAnswer).Msg("Dropping generated question whose answer is not a choice")
			continue
		}
		item.Category = req.Category
		item.Difficulty = string(req.Difficulty)
		accepted = append(accepted, item)
	}
	if len(accepted) == 0 {
		return nil, fmt.Errorf("gemini returned no usable questions")
	}
	return accepted, nil
}
