package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/klimatkollen/klimatkollen/app/controllers"
	"github.com/klimatkollen/klimatkollen/internal/pkg/constants"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	app.Get(constants.HomeRoute, controllers.GetHomeController().HandleHome)
}
