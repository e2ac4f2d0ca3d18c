package memory

import (
	"context"
	"time"

	"docintel-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type TokenRepository struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewTokenRepository keeps tokens in process memory. A ttl of zero keeps
// them for the life of the process.
func NewTokenRepository(ttl time.Duration) contract.TokenRepository {
	expiration := cache.NoExpiration
	if ttl > 0 {
		expiration = ttl
	}
	// purges expired items every 10 minutes
	c := cache.New(expiration, 10*time.Minute)
	return &TokenRepository{
		cache: c,
		ttl:   expiration,
	}
}

func (r *TokenRepository) Get(_ context.Context, key string) (string, bool, error) {
	if x, found := r.cache.Get(key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (r *TokenRepository) Save(_ context.Context, key, token string) error {
	r.cache.Set(key, token, cache.DefaultExpiration)
	return nil
}

func (r *TokenRepository) Delete(_ context.Context, key string) error {
	r.cache.Delete(key)
	return nil
}
