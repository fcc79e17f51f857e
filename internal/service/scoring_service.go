package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/Quizzy/internal/dto"
	"github.com/lshigami/Quizzy/internal/repository"
	"github.com/rs/zerolog/log"
)

var ErrInvalidSubmission = errors.New("invalid answers format")

// ScoringService grades a batch of answers against the stored correct answers.
type ScoringService interface {
	Submit(ctx context.Context, req dto.SubmitAnswersRequest) (*dto.ScoreResult, error)
}

type scoringService struct {
	questionRepo   repository.QuestionRepository
	scoreConverter ScoreConverterService
}

func NewScoringService(questionRepo repository.QuestionRepository, scoreConverter ScoreConverterService) ScoringService {
	return &scoringService{
		questionRepo:   questionRepo,
		scoreConverter: scoreConverter,
	}
}

// Submit resolves every entry by question id and compares the selected answer
// with the stored one by exact string equality.
//
// TotalQuestions is the number of submitted entries. Entries whose id matches
// no question are left out of Results and of CorrectAnswers, so they count as
// incorrect, and their ids are reported in UnknownQuestionIDs. A non-string
// questionId never resolves and a non-string selectedAnswer never matches.
func (s *scoringService) Submit(ctx context.Context, req dto.SubmitAnswersRequest) (*dto.ScoreResult, error) {
	if req.Answers == nil {
		return nil, ErrInvalidSubmission
	}

	ids := make([]string, 0, len(req.Answers))
	for _, a := range req.Answers {
		if a.Resolvable() {
			ids = append(ids, a.QuestionID)
		}
	}
	questionMap, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Int("answers", len(req.Answers)).Msg("Submit: failed to load questions")
		return nil, fmt.Errorf("load questions: %w", err)
	}

	result := &dto.ScoreResult{
		TotalQuestions: len(req.Answers),
		Results:        make([]dto.QuestionResult, 0, len(req.Answers)),
	}
	for _, answer := range req.Answers {
		question, exists := questionMap[answer.QuestionID]
		if !exists || !answer.Resolvable() {
			log.Warn().Str("questionID", answer.QuestionID).Msg("Submit: answer references an unknown question, skipping.")
			result.UnknownQuestionIDs = append(result.UnknownQuestionIDs, answer.QuestionID)
			continue
		}
		isCorrect := answer.Gradable() && question.CorrectAnswer == answer.SelectedAnswer
		if isCorrect {
			result.CorrectAnswers++
		}
		result.Results = append(result.Results, dto.QuestionResult{
			QuestionID:     question.ID,
			QuestionText:   question.QuestionText,
			SelectedAnswer: answer.SelectedAnswer,
			CorrectAnswer:  question.CorrectAnswer,
			IsCorrect:      isCorrect,
		})
	}

	result.IncorrectAnswers = result.TotalQuestions - result.CorrectAnswers
	result.Percentage = s.scoreConverter.Percentage(result.CorrectAnswers, result.TotalQuestions)

	log.Info().
		Int("total", result.TotalQuestions).
		Int("correct", result.CorrectAnswers).
		Int("unknown", len(result.UnknownQuestionIDs)).
		Float64("percentage", result.Percentage).
		Msg("Submission scored")
	return result, nil
}
