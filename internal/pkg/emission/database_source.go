package emission

import (
	"context"

	"github.com/klimatkollen/klimatkollen/app/models"
	"github.com/klimatkollen/klimatkollen/app/repository"
)

// DatabaseSource reads municipalities from the local database
type DatabaseSource struct {
	repo repository.MunicipalityRepository
}

func NewDatabaseSource(repo repository.MunicipalityRepository) *DatabaseSource {
	return &DatabaseSource{repo: repo}
}

func (s *DatabaseSource) GetMunicipalities(ctx context.Context) ([]models.Municipality, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.repo.GetAll(ctx)
}
