package dto

import "github.com/lshigami/Quizzy/internal/model"

// QuestionResponse is the pre-submission projection of a question. It never
// carries the correct answer.
type QuestionResponse struct {
	ID           string           `json:"id"`
	QuestionText string           `json:"questionText"`
	Choices      []string         `json:"choices"`
	Category     string           `json:"category"`
	Difficulty   model.Difficulty `json:"difficulty" swaggertype:"string" enums:"Easy,Medium,Hard"`
}

// QuestionResult is the per-question review line of a scored submission.
type QuestionResult struct {
	QuestionID     string `json:"questionId"`
	QuestionText   string `json:"questionText"`
	SelectedAnswer string `json:"selectedAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
}

// ScoreResult is returned by POST /api/questions/submit.
type ScoreResult struct {
	TotalQuestions   int              `json:"totalQuestions"`
	CorrectAnswers   int              `json:"correctAnswers"`
	IncorrectAnswers int              `json:"incorrectAnswers"`
	Percentage       float64          `json:"percentage"`
	Results          []QuestionResult `json:"results"`
	// Ids that matched no stored question. They count towards TotalQuestions
	// but have no entry in Results.
	UnknownQuestionIDs []string `json:"unknownQuestionIds,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"OK"`
	Message string `json:"message" example:"Quiz API is running"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
