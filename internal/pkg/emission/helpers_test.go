package emission

import (
	"context"
	"time"

	"github.com/klimatkollen/klimatkollen/app/models"
	"github.com/klimatkollen/klimatkollen/internal/pkg/cache"
)

func sampleMunicipalities() []models.Municipality {
	return []models.Municipality{
		{Name: "Lund", HistoricalEmission: models.HistoricalEmission{EmissionLevelChangeAverage: -5.2}},
		{Name: "Kiruna", HistoricalEmission: models.HistoricalEmission{EmissionLevelChangeAverage: 1.1}},
	}
}

type stubSource struct {
	municipalities []models.Municipality
	err            error
	calls          int
}

func (s *stubSource) GetMunicipalities(ctx context.Context) ([]models.Municipality, error) {
	s.calls++
	return s.municipalities, s.err
}

type memoryCache struct {
	values  map[string]string
	ttls    map[string]time.Duration
	getErr  error
	setErr  error
	setHits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	val, ok := m.values[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return val, nil
}

func (m *memoryCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	m.setHits++
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	m.ttls[key] = expiration
	return nil
}
