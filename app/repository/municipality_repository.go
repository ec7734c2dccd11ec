package repository

import (
	"context"

	"github.com/klimatkollen/klimatkollen/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// municipalityRepository implements the MunicipalityRepository interface
type municipalityRepository struct {
	db *gorm.DB
}

// NewMunicipalityRepository creates a new municipality repository instance
func NewMunicipalityRepository(db *gorm.DB) MunicipalityRepository {
	return &municipalityRepository{db: db}
}

// GetAll retrieves all municipalities in insertion order
func (r *municipalityRepository) GetAll(ctx context.Context) ([]models.Municipality, error) {
	var municipalities []models.Municipality
	err := r.db.WithContext(ctx).Order("id ASC").Find(&municipalities).Error
	return municipalities, err
}

// Upsert inserts the municipality or updates the emission summary of an existing row with the same name.
// A soft-deleted row with that name is restored.
func (r *municipalityRepository) Upsert(ctx context.Context, municipality *models.Municipality) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"emission_level_change_average", "emission_base_year", "updated_at", "deleted_at"}),
	}).Create(municipality).Error
}

// Count returns the total number of municipalities
func (r *municipalityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Municipality{}).Count(&count).Error
	return count, err
}
