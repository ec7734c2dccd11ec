package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/klimatkollen/klimatkollen/app/controllers"
	"github.com/klimatkollen/klimatkollen/internal/pkg/constants"
	"github.com/klimatkollen/klimatkollen/internal/pkg/emission"
	"github.com/klimatkollen/klimatkollen/internal/pkg/env"
	"github.com/klimatkollen/klimatkollen/internal/pkg/router"
	"github.com/klimatkollen/klimatkollen/public"
	"github.com/klimatkollen/klimatkollen/views"
)

const openAPIFile = "public/docs/v1/openapi.yml"

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	service, err := emission.NewServiceFromEnv()
	if err != nil {
		return err
	}
	app := NewApplication(service)
	return app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
}

func NewApplication(service *emission.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Klimatkollen",
		Views:        views.NewEngine(env.IsDev()),
		ErrorHandler: controllers.HandleError,
	})

	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))

	// answer /favicon.ico without hitting the router, the layout links the svg icon
	app.Use(favicon.New(favicon.Config{URL: "/favicon.ico"}))

	// recovery and logging
	app.Use(recover.New(), logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))

	// fiber metrics, only exposed when credentials are configured
	if password := env.GetEnv("METRICS_PASSWORD", ""); password != "" {
		app.Get(constants.MetricsRoute, basicauth.New(basicauth.Config{
			Users: map[string]string{
				env.GetEnv("METRICS_USER", "admin"): password,
			},
		}), monitor.New(monitor.Config{Title: "Klimatkollen Metrics"}))
	}

	// static files
	app.Use(constants.StaticRoute, filesystem.New(filesystem.Config{
		Root:       http.FS(public.FS),
		PathPrefix: "assets",
		MaxAge:     3600,
	}))

	// SWAGGER / OPENAPI
	if specPath := findOpenAPISpec(); specPath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: constants.DocsRoute,
			FilePath: specPath,
			Path:     "v1",
			Title:    "Klimatkollen API",
		}))
	}

	// ROUTER
	router.InstallRouter(app, service)

	return app
}

// findOpenAPISpec looks for the OpenAPI document from the working directory up to the project root
func findOpenAPISpec() string {
	basePaths := []string{
		"./",        // Current directory
		"../../",    // From cmd/klimatkollen to project root
		"../../../", // Fallback
	}
	for _, base := range basePaths {
		path := filepath.Join(base, openAPIFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
