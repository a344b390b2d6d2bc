package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"devforum/internal/auth"
	"devforum/internal/errors"
	"devforum/internal/model"
	"devforum/internal/service"
)

// QuestionHandler handles question endpoints.
type QuestionHandler struct {
	questionService service.QuestionService
}

// NewQuestionHandler creates a new question handler.
func NewQuestionHandler(questionService service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// TagRequest names a tag to attach to a question.
type TagRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// CreateQuestionRequest represents a new question submission.
type CreateQuestionRequest struct {
	Title           string       `json:"title" validate:"required,max=255"`
	Category        string       `json:"category" validate:"omitempty,oneof=javascript react python nodejs css typescript database api mobile other"`
	DifficultyLevel string       `json:"difficulty_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	QuestionDetail  string       `json:"question_detail" validate:"required"`
	Tags            []TagRequest `json:"tags"`
}

// VoteRequest represents an up or down vote.
type VoteRequest struct {
	Type string `json:"type"`
}

// ViewsResponse carries the view counter after an increment.
type ViewsResponse struct {
	Views uint `json:"views"`
}

// VotesResponse carries the vote tally after a vote.
type VotesResponse struct {
	Votes int `json:"votes"`
}

// List godoc
// @Summary List all questions, newest first
// @Tags questions
// @Produce json
// @Success 200 {array} model.Question
// @Failure 500 {object} errors.ErrorResponse
// @Router /questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	questions, err := h.questionService.List(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, questions)
}

// Create godoc
// @Summary Post a new question
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateQuestionRequest true "Question data"
// @Success 201 {object} model.Question
// @Failure 400 {object} errors.FieldErrors
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /questions [post]
func (h *QuestionHandler) Create(c echo.Context) error {
	var req CreateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidToken)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	tagNames := make([]string, 0, len(req.Tags))
	for _, tag := range req.Tags {
		tagNames = append(tagNames, tag.Name)
	}

	question, err := h.questionService.Create(c.Request().Context(), user, service.CreateQuestionInput{
		Title:           req.Title,
		Category:        model.QuestionCategory(req.Category),
		DifficultyLevel: model.DifficultyLevel(req.DifficultyLevel),
		QuestionDetail:  req.QuestionDetail,
		TagNames:        tagNames,
	})
	if err != nil {
		if fieldErrs, ok := err.(errors.FieldErrors); ok {
			c.Logger().Errorf("question validation failed: %v", fieldErrs)
			return c.JSON(http.StatusBadRequest, fieldErrs)
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, question)
}

// Get godoc
// @Summary Get a single question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} model.Question
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /questions/{id} [get]
func (h *QuestionHandler) Get(c echo.Context) error {
	id, err := questionID(c)
	if err != nil {
		return err
	}

	question, err := h.questionService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, question)
}

// IncrementView godoc
// @Summary Add one to a question's view counter
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} ViewsResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /questions/{id}/increment_view [post]
func (h *QuestionHandler) IncrementView(c echo.Context) error {
	id, err := questionID(c)
	if err != nil {
		return err
	}

	views, err := h.questionService.IncrementView(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, ViewsResponse{Views: views})
}

// Vote godoc
// @Summary Vote a question up or down
// @Tags questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body VoteRequest true "Vote type: up or down"
// @Success 200 {object} VotesResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /questions/{id}/vote [post]
func (h *QuestionHandler) Vote(c echo.Context) error {
	id, err := questionID(c)
	if err != nil {
		return err
	}

	var req VoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	votes, err := h.questionService.Vote(c.Request().Context(), id, req.Type)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, VotesResponse{Votes: votes})
}

// questionID parses the :id path parameter.
func questionID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid question id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
