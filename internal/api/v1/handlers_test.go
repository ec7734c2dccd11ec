package apiv1

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klimatkollen/klimatkollen/app/models"
	"github.com/klimatkollen/klimatkollen/internal/pkg/emission"
)

type stubSource struct {
	municipalities []models.Municipality
	err            error
}

func (s stubSource) GetMunicipalities(ctx context.Context) ([]models.Municipality, error) {
	return s.municipalities, s.err
}

func newTestApp(src emission.Source) *fiber.App {
	app := fiber.New()
	RegisterHandlers(app.Group("/api/v1"), NewAPIServer(emission.NewService(src)))
	return app
}

func TestGetPing(t *testing.T) {
	resp, err := newTestApp(stubSource{}).Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/ping", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var pong Pong
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pong))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", pong.Ping)
}

func TestGetMunicipalities(t *testing.T) {
	app := newTestApp(stubSource{municipalities: []models.Municipality{
		{Name: "Lund", HistoricalEmission: models.HistoricalEmission{EmissionLevelChangeAverage: -5.2}},
		{Name: "Kiruna", HistoricalEmission: models.HistoricalEmission{EmissionLevelChangeAverage: 1.1}},
	}})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/municipalities", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var got Municipalities
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, []string{"Lund", "Kiruna"}, got.Names)
	assert.Equal(t, []EmissionLevel{
		{Name: "Lund", Emissions: -5.2, Color: "#EF9917"},
		{Name: "Kiruna", Emissions: 1.1, Color: "#EF3054"},
	}, got.Emissions)
}

func TestGetMunicipalities_Empty(t *testing.T) {
	resp, err := newTestApp(stubSource{}).Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/municipalities", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	var body Error
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "no_data", body.Error)
}

func TestGetMunicipalities_UpstreamError(t *testing.T) {
	resp, err := newTestApp(stubSource{err: errors.New("timeout")}).Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/municipalities", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}
