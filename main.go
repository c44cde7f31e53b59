package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/korlavalasa/villageportal/app/repository"
	"github.com/korlavalasa/villageportal/internal/pkg/cache"
	"github.com/korlavalasa/villageportal/internal/pkg/constants"
	"github.com/korlavalasa/villageportal/internal/pkg/database"
	"github.com/korlavalasa/villageportal/internal/pkg/env"
	"github.com/korlavalasa/villageportal/internal/pkg/imagestore"
	"github.com/korlavalasa/villageportal/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	// Seeding is best-effort; the server starts either way
	database.Seed(database.GetDB())

	repository.InitializeFactory(database.GetDB())

	if _, err := imagestore.Setup(); err != nil {
		panic(err)
	}

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{
		Views:     engine,
		BodyLimit: 50 * 1024 * 1024, // 50 MB upload ceiling
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())
	app.Static(constants.PublicRoute, "./public/assets")
	app.Static(constants.UploadsRoute, "./public/uploads")

	// ROUTER
	router.InstallRouter(app)

	return app
}
