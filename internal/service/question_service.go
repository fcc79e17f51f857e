package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Quizzy/internal/dto"
	"github.com/lshigami/Quizzy/internal/model"
	"github.com/lshigami/Quizzy/internal/repository"
	"github.com/rs/zerolog/log"
)

var ErrQuestionNotFound = errors.New("question not found")

// QuestionService exposes the read side of the question store. Every response
// is a projection without the correct answer.
type QuestionService interface {
	ListQuestions(ctx context.Context, query dto.QuestionQuery) ([]dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error)
	ListCategories(ctx context.Context) ([]string, error)
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

func (s *questionService) ListQuestions(ctx context.Context, query dto.QuestionQuery) ([]dto.QuestionResponse, error) {
	filter := repository.QuestionFilter{}
	copier.Copy(&filter, &query)

	questions, err := s.repo.Find(ctx, filter)
	if err != nil {
		log.Error().Err(err).Interface("filter", filter).Msg("Failed to list questions")
		return nil, fmt.Errorf("find questions: %w", err)
	}

	resp := make([]dto.QuestionResponse, 0, len(questions))
	for i := range questions {
		resp = append(resp, toQuestionResponse(&questions[i]))
	}
	return resp, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id string) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
		}
		log.Error().Err(err).Str("questionID", id).Msg("Failed to get question")
		return nil, fmt.Errorf("find question %s: %w", id, err)
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *questionService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.DistinctCategories(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list categories")
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func toQuestionResponse(q *model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	copier.Copy(&resp, q)
	if resp.Choices == nil {
		resp.Choices = []string{}
	}
	return resp
}
