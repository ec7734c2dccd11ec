package apiv1

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/klimatkollen/klimatkollen/internal/pkg/emission"
	"github.com/klimatkollen/klimatkollen/internal/pkg/viewmodel"
)

// APIServer serves the public JSON API
type APIServer struct {
	service *emission.Service
}

// NewAPIServer creates a new API server instance
func NewAPIServer(service *emission.Service) *APIServer {
	return &APIServer{service: service}
}

// RegisterHandlers mounts the API routes on router
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)
	router.Get("/municipalities", s.GetMunicipalities)
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(Pong{Ping: "pong"})
}

// GetMunicipalities returns the same projections the map page renders
func (s *APIServer) GetMunicipalities(c *fiber.Ctx) error {
	municipalities, err := s.service.GetMunicipalities(c.UserContext())
	if errors.Is(err, emission.ErrNoMunicipalities) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(Error{Error: "no_data", Message: err.Error()})
	}
	if err != nil {
		log.Printf("[api] municipalities fetch failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(Error{Error: "upstream_failed", Message: "emission data source unavailable"})
	}

	levels := viewmodel.EmissionLevels(municipalities)
	response := Municipalities{
		Names:     viewmodel.MunicipalityNames(municipalities),
		Emissions: make([]EmissionLevel, len(levels)),
	}
	for i, level := range levels {
		response.Emissions[i] = EmissionLevel{
			Name:      level.Name,
			Emissions: level.Emissions,
			Color:     viewmodel.BandFor(level.Emissions).Color,
		}
	}
	return c.JSON(response)
}
