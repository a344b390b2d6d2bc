package repository

import (
	"context"

	"gorm.io/gorm"

	"devforum/internal/model"
)

// QuestionRepository defines question persistence operations.
type QuestionRepository interface {
	Create(ctx context.Context, question *model.Question) error
	// Save writes back the full record. Counter updates go through a plain
	// load-then-Save cycle, so concurrent writers can overwrite each other.
	Save(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	List(ctx context.Context) ([]model.Question, error)
	AppendTag(ctx context.Context, question *model.Question, tag *model.Tag) error
	Delete(ctx context.Context, id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository builds a GORM-backed repository.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Omit("Tags").Create(question).Error
}

func (r *questionRepository) Save(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Omit("Tags", "Author").Save(question).Error
}

// FindByID returns the question with tags and author preloaded.
func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.WithContext(ctx).Preload("Tags").Preload("Author").
		First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// List returns all questions newest-first with tags and author preloaded.
func (r *questionRepository) List(ctx context.Context) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.WithContext(ctx).Preload("Tags").Preload("Author").
		Order("created_at DESC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// AppendTag links a tag to a question in the join table.
func (r *questionRepository) AppendTag(ctx context.Context, question *model.Question, tag *model.Tag) error {
	return r.db.WithContext(ctx).Model(question).Association("Tags").Append(tag)
}

// Delete removes a question. Answers and tag links cascade at the schema level.
func (r *questionRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Question{}, id).Error
}
