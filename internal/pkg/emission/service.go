// Package emission loads municipalities and their emission summaries from
// the configured data source.
package emission

import (
	"context"
	"errors"
	"fmt"

	"github.com/klimatkollen/klimatkollen/app/models"
)

// ErrNoMunicipalities is returned when the source answered with an empty collection
var ErrNoMunicipalities = errors.New("no municipalities found")

// Source returns the full municipality collection
type Source interface {
	GetMunicipalities(ctx context.Context) ([]models.Municipality, error)
}

// Service is the entry point controllers and commands use to read municipalities
type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// GetMunicipalities returns every municipality in source order. An empty
// result is an error, never a valid page.
func (s *Service) GetMunicipalities(ctx context.Context) ([]models.Municipality, error) {
	municipalities, err := s.source.GetMunicipalities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch municipalities: %w", err)
	}
	if len(municipalities) < 1 {
		return nil, ErrNoMunicipalities
	}
	return municipalities, nil
}
