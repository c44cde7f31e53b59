package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/korlavalasa/villageportal/app/controllers"
	"github.com/korlavalasa/villageportal/internal/pkg/constants"
	"github.com/korlavalasa/villageportal/internal/pkg/middleware"
)

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	adminGroup := app.Group(constants.AdminRoute, middleware.RequireAdmin)
	adminGroup.Get("/", controllers.GetAdminController().HandleAdminDashboard)

	// News management
	news := controllers.GetAdminNewsController()
	adminGroup.Get("/news", news.HandleAdminNews)
	adminGroup.Get("/news/create", news.HandleAdminNewsCreate)
	adminGroup.Post("/news/store", news.HandleAdminNewsStore)
	adminGroup.Get("/news/edit/:id", news.HandleAdminNewsEdit)
	adminGroup.Post("/news/update/:id", news.HandleAdminNewsUpdate)
	adminGroup.Post("/news/delete/:id", news.HandleAdminNewsDelete)

	// Event management
	events := controllers.GetAdminEventController()
	adminGroup.Get("/events", events.HandleAdminEvents)
	adminGroup.Get("/events/create", events.HandleAdminEventCreate)
	adminGroup.Post("/events/store", events.HandleAdminEventStore)
	adminGroup.Get("/events/edit/:id", events.HandleAdminEventEdit)
	adminGroup.Post("/events/update/:id", events.HandleAdminEventUpdate)
	adminGroup.Post("/events/delete/:id", events.HandleAdminEventDelete)

	// Gallery management
	gallery := controllers.GetAdminGalleryController()
	adminGroup.Get("/gallery", gallery.HandleAdminGallery)
	adminGroup.Get("/gallery/create", gallery.HandleAdminGalleryCreate)
	adminGroup.Post("/gallery/store", gallery.HandleAdminGalleryStore)
	adminGroup.Post("/gallery/delete/:id", gallery.HandleAdminGalleryDelete)

	// Village profile
	village := controllers.GetAdminVillageController()
	adminGroup.Get("/village-info", village.HandleAdminVillageInfo)
	adminGroup.Post("/village-info", village.HandleAdminVillageInfoUpdate)
}
