package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/utils"
)

// HandleError is the application error handler. It answers with the bare
// status text and never renders fallback page content.
func HandleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Printf("[%v] %s %s failed: %v", c.Locals(requestid.ConfigDefault.ContextKey), c.Method(), c.Path(), err)
	}

	c.Response().Header.Del(fiber.HeaderCacheControl)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(utils.StatusMessage(code))
}
