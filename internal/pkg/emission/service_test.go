package emission

import (
	"context"
	"errors"
	"testing"

	"github.com/klimatkollen/klimatkollen/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceGetMunicipalities(t *testing.T) {
	svc := NewService(&stubSource{municipalities: sampleMunicipalities()})

	got, err := svc.GetMunicipalities(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleMunicipalities(), got)
}

func TestServiceGetMunicipalities_Empty(t *testing.T) {
	for _, in := range [][]models.Municipality{nil, {}} {
		svc := NewService(&stubSource{municipalities: in})

		got, err := svc.GetMunicipalities(context.Background())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrNoMunicipalities)
	}
}

func TestServiceGetMunicipalities_SourceError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewService(&stubSource{err: boom})

	_, err := svc.GetMunicipalities(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrNoMunicipalities)
}
