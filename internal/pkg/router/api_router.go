package router

import (
	"github.com/gofiber/fiber/v2"

	apiv1 "github.com/klimatkollen/klimatkollen/internal/api/v1"
	"github.com/klimatkollen/klimatkollen/internal/pkg/constants"
	"github.com/klimatkollen/klimatkollen/internal/pkg/emission"
	"github.com/klimatkollen/klimatkollen/internal/pkg/ratelimit"
)

type ApiRouter struct {
	service *emission.Service
	storage fiber.Storage
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	api := app.Group(constants.APIRoute, ratelimit.New(h.storage))
	api.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Hello from api",
		})
	})

	v1 := api.Group("/v1")
	apiv1.RegisterHandlers(v1, apiv1.NewAPIServer(h.service))
}

func NewApiRouter(service *emission.Service) *ApiRouter {
	return &ApiRouter{service: service, storage: ratelimit.NewStorage()}
}
