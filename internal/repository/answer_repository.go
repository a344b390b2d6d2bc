package repository

import (
	"context"

	"gorm.io/gorm"

	"devforum/internal/model"
)

// AnswerRepository defines answer persistence operations.
type AnswerRepository interface {
	Create(ctx context.Context, answer *model.Answer) error
	ListByQuestion(ctx context.Context, questionID uint) ([]model.Answer, error)
	CountByQuestion(ctx context.Context, questionID uint) (int64, error)
}

type answerRepository struct {
	db *gorm.DB
}

// NewAnswerRepository builds a GORM-backed repository.
func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Create(ctx context.Context, answer *model.Answer) error {
	return r.db.WithContext(ctx).Create(answer).Error
}

// ListByQuestion returns the answers for a question in natural store order.
func (r *answerRepository) ListByQuestion(ctx context.Context, questionID uint) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.WithContext(ctx).Preload("Author").
		Where("question_id = ?", questionID).Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) CountByQuestion(ctx context.Context, questionID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Answer{}).
		Where("question_id = ?", questionID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
