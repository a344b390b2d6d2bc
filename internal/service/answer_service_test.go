package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"devforum/internal/errors"
	"devforum/internal/model"
)

func TestAnswerService_Create(t *testing.T) {
	author := &model.User{ID: 4, Username: "alice"}

	t.Run("successful creation", func(t *testing.T) {
		aRepo := new(MockAnswerRepository)
		qRepo := new(MockQuestionRepository)
		qRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Question{ID: 1}, nil)
		aRepo.On("Create", mock.Anything, mock.MatchedBy(func(a *model.Answer) bool {
			return a.QuestionID == 1 && a.AuthorID == author.ID && a.Content == "Use a pointer receiver."
		})).Return(nil)

		answer, err := NewAnswerService(aRepo, qRepo, nil).
			Create(context.Background(), author, 1, "Use a pointer receiver.")

		assert.NoError(t, err)
		assert.Equal(t, uint(1), answer.QuestionID)
		assert.Equal(t, "alice", answer.Author.Username)
		aRepo.AssertExpectations(t)
	})

	t.Run("missing question is a field error, not a crash", func(t *testing.T) {
		aRepo := new(MockAnswerRepository)
		qRepo := new(MockQuestionRepository)
		qRepo.On("FindByID", mock.Anything, uint(999)).Return(nil, gorm.ErrRecordNotFound)

		_, err := NewAnswerService(aRepo, qRepo, nil).
			Create(context.Background(), author, 999, "orphan answer")

		fieldErrs, ok := err.(errors.FieldErrors)
		assert.True(t, ok)
		assert.Contains(t, fieldErrs, "question")
		aRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing content", func(t *testing.T) {
		qRepo := new(MockQuestionRepository)
		qRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Question{ID: 1}, nil)

		_, err := NewAnswerService(new(MockAnswerRepository), qRepo, nil).
			Create(context.Background(), author, 1, "")

		fieldErrs, ok := err.(errors.FieldErrors)
		assert.True(t, ok)
		assert.Contains(t, fieldErrs, "content")
	})
}

func TestAnswerService_ListByQuestion(t *testing.T) {
	aRepo := new(MockAnswerRepository)
	aRepo.On("ListByQuestion", mock.Anything, uint(1)).Return([]model.Answer{
		{ID: 1, QuestionID: 1, Content: "first"},
		{ID: 2, QuestionID: 1, Content: "second"},
	}, nil)

	answers, err := NewAnswerService(aRepo, new(MockQuestionRepository), nil).
		ListByQuestion(context.Background(), 1)

	assert.NoError(t, err)
	assert.Len(t, answers, 2)
}

func TestAnswerService_ListByQuestion_UnknownQuestionIsEmpty(t *testing.T) {
	aRepo := new(MockAnswerRepository)
	aRepo.On("ListByQuestion", mock.Anything, uint(999)).Return([]model.Answer{}, nil)

	answers, err := NewAnswerService(aRepo, new(MockQuestionRepository), nil).
		ListByQuestion(context.Background(), 999)

	assert.NoError(t, err)
	assert.Empty(t, answers)
}
