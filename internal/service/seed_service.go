package service

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lshigami/Quizzy/internal/dto"
	"github.com/lshigami/Quizzy/internal/model"
	"github.com/lshigami/Quizzy/internal/repository"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed seeddata/questions.yaml
var defaultQuestionsYAML []byte

// SeedService loads question sets from files and bulk-replaces the store.
type SeedService interface {
	LoadFile(path string) ([]dto.QuestionImportDTO, error)
	DefaultQuestions() ([]dto.QuestionImportDTO, error)
	// Reseed validates items, clears the store and inserts them.
	Reseed(ctx context.Context, items []dto.QuestionImportDTO) (*dto.ImportSummary, error)
	// SeedIfEmpty reseeds from path (or the default set when path is empty)
	// only when the store holds no questions. The bool reports whether it did.
	SeedIfEmpty(ctx context.Context, path string) (*dto.ImportSummary, bool, error)
}

type seedService struct {
	repo repository.QuestionRepository
}

func NewSeedService(repo repository.QuestionRepository) SeedService {
	return &seedService{repo: repo}
}

func (s *seedService) LoadFile(path string) ([]dto.QuestionImportDTO, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseQuestionsJSON(raw)
	case ".yaml", ".yml":
		return ParseQuestionsYAML(raw)
	}
	return nil, fmt.Errorf("unsupported seed file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
}

func (s *seedService) DefaultQuestions() ([]dto.QuestionImportDTO, error) {
	return ParseQuestionsYAML(defaultQuestionsYAML)
}

func (s *seedService) Reseed(ctx context.Context, items []dto.QuestionImportDTO) (*dto.ImportSummary, error) {
	questions, warnings, err := BuildQuestions(items)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		log.Warn().Msg(w)
	}

	deleted, err := s.repo.ReplaceAll(ctx, questions)
	if err != nil {
		log.Error().Err(err).Msg("Reseed failed")
		return nil, fmt.Errorf("replace questions: %w", err)
	}
	log.Info().Int64("deleted", deleted).Int("inserted", len(questions)).Msg("Question store reseeded")
	return &dto.ImportSummary{Deleted: deleted, Inserted: len(questions), Warnings: warnings}, nil
}

func (s *seedService) SeedIfEmpty(ctx context.Context, path string) (*dto.ImportSummary, bool, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		log.Info().Int64("questions", count).Msg("Question store already populated, skipping seed")
		return nil, false, nil
	}

	var items []dto.QuestionImportDTO
	if path != "" {
		items, err = s.LoadFile(path)
	} else {
		items, err = s.DefaultQuestions()
	}
	if err != nil {
		return nil, false, err
	}
	summary, err := s.Reseed(ctx, items)
	if err != nil {
		return nil, false, err
	}
	return summary, true, nil
}

// ParseQuestionsJSON accepts either [ ... ] or { "questions": [ ... ] }.
func ParseQuestionsJSON(raw []byte) ([]dto.QuestionImportDTO, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var arr []dto.QuestionImportDTO
		if err := json.Unmarshal(trimmed, &arr); err != nil {
			return nil, fmt.Errorf("json parse: %w", err)
		}
		return arr, nil
	}
	var wrapper dto.QuestionImportFile
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("json parse: %w", err)
	}
	return wrapper.Questions, nil
}

// ParseQuestionsYAML accepts either a top-level sequence or a mapping with a
// "questions" key.
func ParseQuestionsYAML(raw []byte) ([]dto.QuestionImportDTO, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("yaml parse: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var arr []dto.QuestionImportDTO
		if err := root.Decode(&arr); err != nil {
			return nil, fmt.Errorf("yaml parse: %w", err)
		}
		return arr, nil
	}
	var wrapper dto.QuestionImportFile
	if err := root.Decode(&wrapper); err != nil {
		return nil, fmt.Errorf("yaml parse: %w", err)
	}
	return wrapper.Questions, nil
}

// BuildQuestions validates import items and converts them to models. Hard
// problems (missing text, fewer than two choices, missing answer, unknown
// difficulty) fail the whole batch; a correct answer that is not among the
// choices or a repeated question text only produces a warning.
func BuildQuestions(items []dto.QuestionImportDTO) ([]model.Question, []string, error) {
	var (
		questions = make([]model.Question, 0, len(items))
		warnings  []string
		problems  []string
		seen      = make(map[string]int, len(items))
	)
	for i, item := range items {
		pos := i + 1
		text := strings.TrimSpace(item.QuestionText)
		if text == "" {
			problems = append(problems, fmt.Sprintf("question %d: questionText is required", pos))
			continue
		}
		if len(item.Choices) < 2 {
			problems = append(problems, fmt.Sprintf("question %d (%q): at least two choices are required", pos, text))
			continue
		}
		if item.CorrectAnswer == "" {
			problems = append(problems, fmt.Sprintf("question %d (%q): correctAnswer is required", pos, text))
			continue
		}
		difficulty, err := model.ParseDifficulty(item.Difficulty)
		if err != nil {
			problems = append(problems, fmt.Sprintf("question %d (%q): %v", pos, text, err))
			continue
		}

		q := model.Question{
			QuestionText:  text,
			Choices:       append([]string(nil), item.Choices...),
			CorrectAnswer: item.CorrectAnswer,
			Category:      strings.TrimSpace(item.Category),
			Difficulty:    difficulty,
		}
		q.ApplyDefaults()

		if !q.HasChoice(q.CorrectAnswer) {
			warnings = append(warnings, fmt.Sprintf("question %d (%q): correctAnswer %q is not one of the choices", pos, text, q.CorrectAnswer))
		}
		if prev, dup := seen[text]; dup {
			warnings = append(warnings, fmt.Sprintf("question %d duplicates question %d (%q)", pos, prev, text))
		} else {
			seen[text] = pos
		}
		questions = append(questions, q)
	}
	if len(problems) > 0 {
		return nil, warnings, errors.New("invalid seed data:\n  " + strings.Join(problems, "\n  "))
	}
	return questions, warnings, nil
}

// EncodeQuestionsYAML renders items in the seed file layout.
func EncodeQuestionsYAML(items []dto.QuestionImportDTO) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(dto.QuestionImportFile{Questions: items}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
