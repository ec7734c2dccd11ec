package cache

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/klimatkollen/klimatkollen/internal/pkg/env"
	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Store.Get when the key does not exist
var ErrMiss = errors.New("cache: miss")

var client *redis.Client

// SetupCache initializes the connection to the Redis cache server
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	// Test the connection
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		log.Printf("Warning: Could not connect to Redis cache: %v", err)
	} else {
		log.Printf("Successfully connected to Redis cache: %s", pong)
	}
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	if client == nil {
		SetupCache()
	}
	return client
}

// Delete removes a value from the cache by key
func Delete(ctx context.Context, key string) error {
	return GetClient().Del(ctx, key).Err()
}

// Store is a context-aware string cache backed by a Redis client
type Store struct {
	client *redis.Client
}

func NewStore(c *redis.Client) *Store {
	return &Store{client: c}
}

// Get retrieves a value by key, translating a missing key into ErrMiss
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	return val, err
}

// Set stores a value with the given expiration time
func (s *Store) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return s.client.Set(ctx, key, value, expiration).Err()
}
