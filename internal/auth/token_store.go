package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"devforum/internal/cache"
	"devforum/internal/model"
)

const (
	tokenKeyPrefix = "auth_token:"

	// Tokens are never rotated, so cached lookups only go stale when the
	// owning user is deleted. Keep the TTL short enough for that case.
	tokenCacheTTL = 15 * time.Minute
)

// TokenStoreInterface defines the token lookup cache operations.
type TokenStoreInterface interface {
	CacheUser(ctx context.Context, key string, user *model.User) error
	LookupUser(ctx context.Context, key string) (*model.User, error)
}

// TokenStore caches bearer-key to user resolutions in Redis so the hot auth
// path skips the database.
type TokenStore struct {
	cache *cache.Client
}

// Ensure TokenStore implements TokenStoreInterface
var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// CacheUser stores the resolved user for a bearer key with TTL.
func (s *TokenStore) CacheUser(ctx context.Context, key string, user *model.User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal token user: %w", err)
	}
	return s.cache.Set(ctx, tokenKeyPrefix+key, payload, tokenCacheTTL)
}

// LookupUser returns the cached user for a bearer key, or an error on miss.
func (s *TokenStore) LookupUser(ctx context.Context, key string) (*model.User, error) {
	data, err := s.cache.Get(ctx, tokenKeyPrefix+key)
	if err != nil || data == nil {
		return nil, fmt.Errorf("token not cached")
	}
	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("unmarshal token user: %w", err)
	}
	return &user, nil
}

// NewKey generates an opaque bearer token key.
func NewKey() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
