package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Quizzy/internal/dto"
	"github.com/lshigami/Quizzy/internal/service"
	"github.com/rs/zerolog/log"
)

const genericErrorMessage = "Something went wrong!"

type Controller struct {
	questionSvc service.QuestionService
	scoringSvc  service.ScoringService
}

func NewController(qSvc service.QuestionService, sSvc service.ScoringService) *Controller {
	return &Controller{
		questionSvc: qSvc,
		scoringSvc:  sSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/health", ctrl.HealthHandler)

		questions := api.Group("/questions")
		questions.GET("", ctrl.GetAllQuestionsHandler)
		questions.GET("/meta/categories", ctrl.GetCategoriesHandler)
		questions.POST("/submit", ctrl.SubmitAnswersHandler)
		questions.GET("/:id", ctrl.GetQuestionHandler)
	}

	router.NoRoute(NotFoundHandler)
}

// RecoveryHandler turns a handler panic into the generic 500 body.
func RecoveryHandler(c *gin.Context, recovered any) {
	log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("Recovered from panic")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Message: genericErrorMessage, Error: fmt.Sprint(recovered)})
}

func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: genericErrorMessage})
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (ctrl *Controller) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "OK", Message: "Quiz API is running"})
}

// GetAllQuestionsHandler godoc
// @Summary List questions
// @Description Returns all questions matching the optional filters, without correct answers
// @Tags questions
// @Produce json
// @Param category query string false "Exact category"
// @Param difficulty query string false "Exact difficulty" Enums(Easy, Medium, Hard)
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse "Error fetching questions"
// @Router /questions [get]
func (ctrl *Controller) GetAllQuestionsHandler(c *gin.Context) {
	var query dto.QuestionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.Warn().Err(err).Msg("Ignoring unparsable question query")
		query = dto.QuestionQuery{}
	}

	questions, err := ctrl.questionSvc.ListQuestions(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error fetching questions", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestionHandler godoc
// @Summary Get a question by ID
// @Tags questions
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Error fetching question"
// @Router /questions/{id} [get]
func (ctrl *Controller) GetQuestionHandler(c *gin.Context) {
	id := c.Param("id")

	question, err := ctrl.questionSvc.GetQuestion(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error fetching question", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, question)
}

// SubmitAnswersHandler godoc
// @Summary Submit answers and get the score
// @Description Grades each answer against the stored correct answer. Unknown question ids are skipped and listed in unknownQuestionIds.
// @Tags questions
// @Accept json
// @Produce json
// @Param submission body dto.SubmitAnswersRequest true "Answers"
// @Success 200 {object} dto.ScoreResult
// @Failure 400 {object} dto.ErrorResponse "Invalid answers format"
// @Failure 500 {object} dto.ErrorResponse "Error submitting answers"
// @Router /questions/submit [post]
func (ctrl *Controller) SubmitAnswersHandler(c *gin.Context) {
	var req dto.SubmitAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Rejecting malformed submission body")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid answers format"})
		return
	}

	result, err := ctrl.scoringSvc.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSubmission) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid answers format"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error submitting answers", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCategoriesHandler godoc
// @Summary List distinct categories
// @Tags questions
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResponse "Error fetching categories"
// @Router /questions/meta/categories [get]
func (ctrl *Controller) GetCategoriesHandler(c *gin.Context) {
	categories, err := ctrl.questionSvc.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error fetching categories", Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}
