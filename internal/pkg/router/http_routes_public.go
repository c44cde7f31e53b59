package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/korlavalasa/villageportal/app/controllers"
	"github.com/korlavalasa/villageportal/internal/pkg/constants"
	"github.com/korlavalasa/villageportal/internal/pkg/middleware"
)

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// Public pages
	app.Get("/", controllers.HandleHome)
	app.Get("/about", controllers.HandleAbout)
	app.Get("/contact", controllers.HandleContact)
	app.Get("/news", controllers.HandleNewsIndex)
	app.Get("/events", controllers.HandleEventsIndex)
	app.Get("/gallery", controllers.HandleGalleryIndex)

	// Auth (login lives outside the admin group on purpose)
	app.Get(constants.LoginRoute, controllers.HandleAdminLogin)
	app.Post(constants.LoginRoute, controllers.HandleAdminLogin)
	app.Post(constants.LogoutRoute, middleware.RequireAuth, controllers.HandleAdminLogout)
}
