package ratelimit

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/storage/redis"

	"github.com/klimatkollen/klimatkollen/internal/pkg/cache"
	"github.com/klimatkollen/klimatkollen/internal/pkg/env"
)

// limiterDatabase keeps limiter counters apart from the data cache in DB 0
const limiterDatabase = 1

// NewStorage returns the shared limiter storage. With RATE_LIMIT_STORAGE=memory
// it returns nil and the limiter keeps counters per process.
func NewStorage() fiber.Storage {
	if env.GetEnv("RATE_LIMIT_STORAGE", "redis") == "memory" {
		return nil
	}

	// Reuse the address of the existing cache client
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if cacheClient := cache.GetClient(); cacheClient != nil {
		if h, p, err := net.SplitHostPort(cacheClient.Options().Addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := cacheClient.Options().Password; p != "" {
			password = p
		}
	}

	return redis.New(redis.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: limiterDatabase,
		Reset:    false,
	})
}

// New returns the limiter middleware for the public API
func New(storage fiber.Storage) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        env.GetInt("API_RATE_LIMIT", 60),
		Expiration: time.Minute,
		Storage:    storage,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":   "rate_limited",
				"message": "Too many requests, try again in a minute",
			})
		},
	})
}
