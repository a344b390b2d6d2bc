package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"devforum/internal/cache"
	"devforum/internal/errors"
	"devforum/internal/model"
	"devforum/internal/repository"
)

// AnswerService handles answer operations.
type AnswerService interface {
	ListByQuestion(ctx context.Context, questionID uint) ([]model.Answer, error)
	Create(ctx context.Context, author *model.User, questionID uint, content string) (*model.Answer, error)
}

type answerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
	cache        *cache.Client
}

// NewAnswerService creates a new answer service.
func NewAnswerService(
	answerRepo repository.AnswerRepository,
	questionRepo repository.QuestionRepository,
	cache *cache.Client,
) AnswerService {
	return &answerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		cache:        cache,
	}
}

// ListByQuestion returns the answers for a question. A nonexistent question
// yields an empty list, not an error.
func (s *answerService) ListByQuestion(ctx context.Context, questionID uint) ([]model.Answer, error) {
	return s.answerRepo.ListByQuestion(ctx, questionID)
}

// Create persists an answer for the given question. The question id comes
// from the URL path; any body-supplied value is ignored by the handler.
func (s *answerService) Create(ctx context.Context, author *model.User, questionID uint, content string) (*model.Answer, error) {
	fieldErrs := errors.FieldErrors{}
	if content == "" {
		fieldErrs["content"] = "this field is required"
	}
	if _, err := s.questionRepo.FindByID(ctx, questionID); err != nil {
		if err == gorm.ErrRecordNotFound {
			fieldErrs["question"] = fmt.Sprintf("question %d does not exist", questionID)
		} else {
			return nil, fmt.Errorf("find question: %w", err)
		}
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	answer := &model.Answer{
		QuestionID: questionID,
		Content:    content,
		AuthorID:   author.ID,
	}
	if err := s.answerRepo.Create(ctx, answer); err != nil {
		return nil, fmt.Errorf("create answer: %w", err)
	}
	answer.Author = *author

	// The cached question detail carries answer_count.
	_ = s.cache.Delete(ctx, fmt.Sprintf("question:%d", questionID))

	return answer, nil
}
