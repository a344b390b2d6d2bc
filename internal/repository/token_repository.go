package repository

import (
	"context"

	"gorm.io/gorm"

	"devforum/internal/model"
)

// TokenRepository defines auth token persistence operations.
type TokenRepository interface {
	Create(ctx context.Context, token *model.AuthToken) error
	FindByKey(ctx context.Context, key string) (*model.AuthToken, error)
	FindByUser(ctx context.Context, userID uint) (*model.AuthToken, error)
}

type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository builds a GORM-backed repository.
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) Create(ctx context.Context, token *model.AuthToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

// FindByKey resolves a bearer key to its token with the owning user preloaded.
func (r *tokenRepository) FindByKey(ctx context.Context, key string) (*model.AuthToken, error) {
	var token model.AuthToken
	if err := r.db.WithContext(ctx).Preload("User").
		Where("`key` = ?", key).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *tokenRepository) FindByUser(ctx context.Context, userID uint) (*model.AuthToken, error) {
	var token model.AuthToken
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}
