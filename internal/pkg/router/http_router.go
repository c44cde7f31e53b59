package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/korlavalasa/villageportal/app/controllers"
	"github.com/korlavalasa/villageportal/internal/pkg/middleware"
	"github.com/korlavalasa/villageportal/internal/pkg/session"
)

type HttpRouter struct {
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Apply UserContext middleware globally as first middleware
	app.Use(middleware.UserContextMiddleware)

	// Initialize controllers with their repositories
	controllers.InitializeAdminController()
	controllers.InitializeAdminNewsController()
	controllers.InitializeAdminEventController()
	controllers.InitializeAdminGalleryController()
	controllers.InitializeAdminVillageController()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}
