package repository

import (
	"context"

	"gorm.io/gorm"

	"devforum/internal/model"
)

// TagRepository defines tag persistence operations.
type TagRepository interface {
	GetOrCreate(ctx context.Context, name string) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository builds a GORM-backed repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// GetOrCreate returns the tag with the given name, creating it when absent.
// Name matching is case-sensitive.
func (r *tagRepository) GetOrCreate(ctx context.Context, name string) (*model.Tag, error) {
	var existing model.Tag
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	tag := &model.Tag{Name: name}
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return nil, err
	}
	return tag, nil
}

func (r *tagRepository) List(ctx context.Context) ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
