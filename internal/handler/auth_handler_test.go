package handler

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"devforum/internal/errors"
)

func TestAuthHandler_Register(t *testing.T) {
	e := newTestEcho()

	t.Run("successful registration returns the token", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "a@x.com", "pw123456").Return("issued-token", nil)

		c, rec := newTestContext(e, http.MethodPost, "/api/register", `{"email":"a@x.com","password":"pw123456"}`)

		err := NewAuthHandler(svc).Register(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"token":"issued-token"}`, rec.Body.String())
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := new(MockAuthService)

		c, _ := newTestContext(e, http.MethodPost, "/api/register", `{"email":"a@x.com"}`)

		err := NewAuthHandler(svc).Register(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "a@x.com", "pw123456").Return("", errors.ErrEmailTaken)

		c, _ := newTestContext(e, http.MethodPost, "/api/register", `{"email":"a@x.com","password":"pw123456"}`)

		err := NewAuthHandler(svc).Register(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	e := newTestEcho()

	t.Run("successful login", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "a@x.com", "pw123456").Return("issued-token", nil)

		c, rec := newTestContext(e, http.MethodPost, "/api/login", `{"email":"a@x.com","password":"pw123456"}`)

		err := NewAuthHandler(svc).Login(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"token":"issued-token"}`, rec.Body.String())
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "a@x.com", "nope").Return("", errors.ErrInvalidCredentials)

		c, _ := newTestContext(e, http.MethodPost, "/api/login", `{"email":"a@x.com","password":"nope"}`)

		err := NewAuthHandler(svc).Login(c)

		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
