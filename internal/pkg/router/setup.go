package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/klimatkollen/klimatkollen/internal/pkg/emission"
)

type Router interface {
	InstallRouter(app *fiber.App)
}

func InstallRouter(app *fiber.App, service *emission.Service) {
	setup(app, NewHttpRouter(service), NewApiRouter(service))
}

func setup(app *fiber.App, router ...Router) {
	for _, r := range router {
		r.InstallRouter(app)
	}
}
