package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"devforum/internal/auth"
	"devforum/internal/errors"
	"devforum/internal/model"
	"devforum/internal/service"
)

// AnswerHandler handles question-scoped answer endpoints.
type AnswerHandler struct {
	answerService service.AnswerService
}

// NewAnswerHandler creates a new answer handler.
func NewAnswerHandler(answerService service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// CreateAnswerRequest represents a new answer submission. The question field
// is accepted for wire compatibility but always overridden by the path id.
type CreateAnswerRequest struct {
	Content  string `json:"content"`
	Question uint   `json:"question"`
}

// AuthorRef identifies an answer's author.
type AuthorRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// AnswerResponse represents an answer on the wire.
type AnswerResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	Question  uint      `json:"question"`
	Author    AuthorRef `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// List godoc
// @Summary List answers for a question
// @Tags answers
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {array} AnswerResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /questions/{id}/answers [get]
func (h *AnswerHandler) List(c echo.Context) error {
	id, err := questionID(c)
	if err != nil {
		return err
	}

	answers, err := h.answerService.ListByQuestion(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := make([]AnswerResponse, 0, len(answers))
	for _, answer := range answers {
		resp = append(resp, toAnswerResponse(answer))
	}
	return c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Post an answer to a question
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param request body CreateAnswerRequest true "Answer data"
// @Success 201 {object} AnswerResponse
// @Failure 400 {object} errors.FieldErrors
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /questions/{id}/answers [post]
func (h *AnswerHandler) Create(c echo.Context) error {
	id, err := questionID(c)
	if err != nil {
		return err
	}

	var req CreateAnswerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	user, ok := auth.CurrentUser(c)
	if !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidToken)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	answer, err := h.answerService.Create(c.Request().Context(), user, id, req.Content)
	if err != nil {
		if fieldErrs, ok := err.(errors.FieldErrors); ok {
			// Surfaced to the client as the body; the detail is also logged
			// for diagnostics.
			c.Logger().Errorf("answer validation failed: %v", fieldErrs)
			return c.JSON(http.StatusBadRequest, fieldErrs)
		}
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, toAnswerResponse(*answer))
}

func toAnswerResponse(answer model.Answer) AnswerResponse {
	return AnswerResponse{
		ID:       answer.ID,
		Content:  answer.Content,
		Question: answer.QuestionID,
		Author: AuthorRef{
			ID:       answer.Author.ID,
			Username: answer.Author.Username,
		},
		CreatedAt: answer.CreatedAt,
	}
}
