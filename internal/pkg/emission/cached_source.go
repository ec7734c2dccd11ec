package emission

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/klimatkollen/klimatkollen/app/models"
	"github.com/klimatkollen/klimatkollen/internal/pkg/cache"
)

// CacheKey holds the JSON encoded municipality collection
const CacheKey = "emissions:municipalities"

// Cache is the subset of cache.Store the cached source needs
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
}

// CachedSource serves municipalities from the cache and refills it from the inner source on a miss
type CachedSource struct {
	inner Source
	cache Cache
	ttl   time.Duration
}

func NewCachedSource(inner Source, c Cache, ttl time.Duration) *CachedSource {
	return &CachedSource{inner: inner, cache: c, ttl: ttl}
}

func (s *CachedSource) GetMunicipalities(ctx context.Context) ([]models.Municipality, error) {
	cached, err := s.cache.Get(ctx, CacheKey)
	switch {
	case err == nil:
		var municipalities []models.Municipality
		if jerr := json.Unmarshal([]byte(cached), &municipalities); jerr == nil && len(municipalities) > 0 {
			return municipalities, nil
		}
		log.Printf("[emission] ignoring unreadable cache entry %s", CacheKey)
	case !errors.Is(err, cache.ErrMiss):
		log.Printf("[emission] cache read failed: %v", err)
	}

	municipalities, err := s.inner.GetMunicipalities(ctx)
	if err != nil {
		return nil, err
	}
	if len(municipalities) == 0 {
		return municipalities, nil
	}

	data, err := json.Marshal(municipalities)
	if err != nil {
		log.Printf("[emission] cache encode failed: %v", err)
		return municipalities, nil
	}
	if err := s.cache.Set(ctx, CacheKey, string(data), s.ttl); err != nil {
		log.Printf("[emission] cache write failed: %v", err)
	}
	return municipalities, nil
}
