package repository

import (
	"context"

	"github.com/klimatkollen/klimatkollen/app/models"
	"gorm.io/gorm"
)

// MunicipalityRepository defines the interface for municipality-related database operations
type MunicipalityRepository interface {
	GetAll(ctx context.Context) ([]models.Municipality, error)
	Upsert(ctx context.Context, municipality *models.Municipality) error
	Count(ctx context.Context) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	Municipality MunicipalityRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Municipality: NewMunicipalityRepository(db),
	}
}
