package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"devforum/internal/auth"
	"devforum/internal/errors"
	"devforum/internal/model"
	"devforum/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login and bearer token resolution.
type AuthService interface {
	Register(ctx context.Context, email, password string) (token string, err error)
	Login(ctx context.Context, email, password string) (token string, err error)
	Authenticate(ctx context.Context, key string) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	tokenRepo  repository.TokenRepository
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	tokenRepo repository.TokenRepository,
	tokenStore auth.TokenStoreInterface,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		tokenStore: tokenStore,
	}
}

// Register creates a user with a hashed password and issues their token.
// The username is the local part of the email.
func (s *authService) Register(ctx context.Context, email, password string) (string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     usernameFromEmail(email),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	token := &model.AuthToken{
		Key:    auth.NewKey(),
		UserID: user.ID,
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", fmt.Errorf("create token: %w", err)
	}

	return token.Key, nil
}

// Login verifies credentials and returns the user's token. The token is
// get-or-create: the key issued at registration is returned on every login,
// never rotated.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.tokenRepo.FindByUser(ctx, user.ID)
	if err == nil {
		return token.Key, nil
	}
	if err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("find token: %w", err)
	}

	token = &model.AuthToken{
		Key:    auth.NewKey(),
		UserID: user.ID,
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return "", fmt.Errorf("create token: %w", err)
	}
	return token.Key, nil
}

// Authenticate resolves a bearer key to its user, cache-aside through Redis.
func (s *authService) Authenticate(ctx context.Context, key string) (*model.User, error) {
	if user, err := s.tokenStore.LookupUser(ctx, key); err == nil {
		return user, nil
	}

	token, err := s.tokenRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, errors.ErrInvalidToken
	}

	user := token.User
	_ = s.tokenStore.CacheUser(ctx, key, &user)
	return &user, nil
}

func usernameFromEmail(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return email
	}
	return local
}
