package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/klimatkollen/klimatkollen/internal/pkg/constants"
	"github.com/klimatkollen/klimatkollen/internal/pkg/emission"
	"github.com/klimatkollen/klimatkollen/internal/pkg/env"
	"github.com/klimatkollen/klimatkollen/internal/pkg/viewmodel"
	"github.com/klimatkollen/klimatkollen/views"
)

// HomeController renders the emission map start page
type HomeController struct {
	service    *emission.Service
	geoJSONURL string
}

// NewHomeController creates a new home controller reading from service
func NewHomeController(service *emission.Service, geoJSONURL string) *HomeController {
	return &HomeController{
		service:    service,
		geoJSONURL: geoJSONURL,
	}
}

var homeController *HomeController

// InitializeHomeController initializes the global home controller
func InitializeHomeController(service *emission.Service) {
	homeController = NewHomeController(service, env.GetEnv("MAP_GEOJSON_URL", "/static/geo/kommuner.geojson"))
}

// GetHomeController returns the global home controller instance
func GetHomeController() *HomeController {
	if homeController == nil {
		panic("Home controller not initialized. Call InitializeHomeController first.")
	}
	return homeController
}

// HandleHome fetches all municipalities and renders the map page. Any fetch
// failure, including an empty collection, aborts the request.
func (hc *HomeController) HandleHome(c *fiber.Ctx) error {
	municipalities, err := hc.service.GetMunicipalities(c.UserContext())
	if err != nil {
		return err
	}

	home := viewmodel.NewHome(municipalities, hc.geoJSONURL)
	home.Layout.IsDev = env.IsDev()

	metaTags, err := views.RenderMetaTags(c.UserContext(), home.Layout.Meta)
	if err != nil {
		return err
	}

	if err := c.Render("index", fiber.Map{
		"Home":     home,
		"MetaTags": metaTags,
	}, "layouts/main"); err != nil {
		return err
	}

	c.Set(fiber.HeaderCacheControl, constants.HomeCacheControl)
	return nil
}
