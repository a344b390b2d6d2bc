package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"devforum/internal/auth"
	"devforum/internal/handler"
)

// Register wires routes and middleware. Authentication is composed per route:
// public reads stay open, mutations behind the guard.
func Register(
	e *echo.Echo,
	authenticator auth.Authenticator,
	authHandler *handler.AuthHandler,
	questionHandler *handler.QuestionHandler,
	answerHandler *handler.AnswerHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	guard := auth.RequireAuth(authenticator)

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.GET("/questions", questionHandler.List)
	api.GET("/questions/:id", questionHandler.Get)
	api.POST("/questions/:id/increment_view", questionHandler.IncrementView)

	// Authenticated routes
	api.POST("/questions", questionHandler.Create, guard)
	api.POST("/questions/:id/vote", questionHandler.Vote, guard)
	api.GET("/questions/:id/answers", answerHandler.List, guard)
	api.POST("/questions/:id/answers", answerHandler.Create, guard)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
