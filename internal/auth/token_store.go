package auth

import (
	"context"
	"time"

	"pesagem/internal/cache"
)

const blacklistKeyPrefix = "blacklist:token:"

// TokenStoreInterface defines the logged-out-token blacklist.
type TokenStoreInterface interface {
	Blacklist(ctx context.Context, tokenID string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore keeps logged-out token IDs in Redis until their natural expiry.
// Tokens themselves stay stateless; the blacklist fails open when redis is
// down so auth never depends on it.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// Blacklist marks a token ID as logged out for the remaining token lifetime.
func (s *TokenStore) Blacklist(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.cache.Set(ctx, blacklistKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsBlacklisted reports whether a token ID was logged out.
func (s *TokenStore) IsBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	data, err := s.cache.Get(ctx, blacklistKeyPrefix+tokenID)
	if err != nil {
		return false, nil // fail open
	}
	return data != nil, nil
}
