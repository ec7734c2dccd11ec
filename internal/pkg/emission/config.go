package emission

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/klimatkollen/klimatkollen/app/repository"
	"github.com/klimatkollen/klimatkollen/internal/pkg/cache"
	"github.com/klimatkollen/klimatkollen/internal/pkg/database"
	"github.com/klimatkollen/klimatkollen/internal/pkg/env"
)

const (
	SourceAPI      = "api"
	SourceDatabase = "database"
)

// Config selects and tunes the source chain
type Config struct {
	Source   string        `validate:"required,oneof=api database"`
	APIURL   string        `validate:"omitempty,url"`
	Timeout  time.Duration `validate:"gt=0"`
	CacheTTL time.Duration `validate:"gte=0"`
}

// ConfigFromEnv reads EMISSION_* variables
func ConfigFromEnv() Config {
	return Config{
		Source:   env.GetEnv("EMISSION_SOURCE", SourceAPI),
		APIURL:   env.GetEnv("EMISSION_API_URL", ""),
		Timeout:  env.GetDuration("EMISSION_API_TIMEOUT", 10*time.Second),
		CacheTTL: env.GetDuration("EMISSION_CACHE_TTL", 5*time.Minute),
	}
}

func (c Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid emission config: %w", err)
	}
	if c.Source == SourceAPI && c.APIURL == "" {
		return fmt.Errorf("invalid emission config: EMISSION_API_URL is required for source %q", SourceAPI)
	}
	return nil
}

// NewSource builds the uncached source named by the config
func NewSource(cfg Config) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Source {
	case SourceDatabase:
		db := database.GetDB()
		if db == nil {
			database.SetupDatabase()
			db = database.GetDB()
		}
		repository.InitializeFactory(db)
		return NewDatabaseSource(repository.GetGlobalFactory().GetMunicipalityRepository()), nil
	default:
		return NewAPISource(cfg.APIURL, cfg.Timeout), nil
	}
}

// NewServiceFromEnv wires the configured source behind the Redis cache
func NewServiceFromEnv() (*Service, error) {
	cfg := ConfigFromEnv()
	source, err := NewSource(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.CacheTTL > 0 {
		source = NewCachedSource(source, cache.NewStore(cache.GetClient()), cfg.CacheTTL)
	}
	return NewService(source), nil
}
