package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"

	"devforum/internal/model"
	"devforum/internal/service"
)

// testValidator mirrors the validator wired by the router.
type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, key string) (*model.User, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

// MockQuestionService is a mock implementation of service.QuestionService.
type MockQuestionService struct {
	mock.Mock
}

func (m *MockQuestionService) List(ctx context.Context) ([]model.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Question), args.Error(1)
}

func (m *MockQuestionService) Create(ctx context.Context, author *model.User, input service.CreateQuestionInput) (*model.Question, error) {
	args := m.Called(ctx, author, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionService) Get(ctx context.Context, id uint) (*model.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Question), args.Error(1)
}

func (m *MockQuestionService) IncrementView(ctx context.Context, id uint) (uint, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(uint), args.Error(1)
}

func (m *MockQuestionService) Vote(ctx context.Context, id uint, voteType string) (int, error) {
	args := m.Called(ctx, id, voteType)
	return args.Int(0), args.Error(1)
}

// MockAnswerService is a mock implementation of service.AnswerService.
type MockAnswerService struct {
	mock.Mock
}

func (m *MockAnswerService) ListByQuestion(ctx context.Context, questionID uint) ([]model.Answer, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Answer), args.Error(1)
}

func (m *MockAnswerService) Create(ctx context.Context, author *model.User, questionID uint, content string) (*model.Answer, error) {
	args := m.Called(ctx, author, questionID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Answer), args.Error(1)
}
