package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/klimatkollen/klimatkollen/app/controllers"
	"github.com/klimatkollen/klimatkollen/internal/pkg/emission"
)

type HttpRouter struct {
	service *emission.Service
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	controllers.InitializeHomeController(h.service)

	h.registerPublicRoutes(app)
}

func NewHttpRouter(service *emission.Service) *HttpRouter {
	return &HttpRouter{service: service}
}
