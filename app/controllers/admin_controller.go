package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/korlavalasa/villageportal/app/repository"
)

// AdminController serves the dashboard with content counts
type AdminController struct {
	newsRepo    repository.NewsRepository
	eventRepo   repository.EventRepository
	galleryRepo repository.GalleryRepository
	villageRepo repository.VillageInfoRepository
}

// NewAdminController creates a new admin controller with repositories
func NewAdminController(repos *repository.Repositories) *AdminController {
	return &AdminController{
		newsRepo:    repos.News,
		eventRepo:   repos.Event,
		galleryRepo: repos.Gallery,
		villageRepo: repos.VillageInfo,
	}
}

// HandleAdminDashboard renders the admin landing page
func (ac *AdminController) HandleAdminDashboard(c *fiber.Ctx) error {
	newsCount, err := ac.newsRepo.Count()
	if err != nil {
		return flashError(c, "Failed to load dashboard: "+err.Error(), "/")
	}
	eventCount, err := ac.eventRepo.Count()
	if err != nil {
		return flashError(c, "Failed to load dashboard: "+err.Error(), "/")
	}
	galleryCount, err := ac.galleryRepo.Count()
	if err != nil {
		return flashError(c, "Failed to load dashboard: "+err.Error(), "/")
	}

	info := villageInfoOrDefault(ac.villageRepo)

	return c.Render("admin/dashboard", viewData(c, "Admin Dashboard", fiber.Map{
		"NewsCount":    newsCount,
		"EventCount":   eventCount,
		"GalleryCount": galleryCount,
		"VillageInfo":  info,
	}), mainLayout)
}

var adminController *AdminController

// InitializeAdminController initializes the global admin controller
func InitializeAdminController() {
	adminController = NewAdminController(repository.GetGlobalRepositories())
}

// GetAdminController returns the global admin controller instance
func GetAdminController() *AdminController {
	if adminController == nil {
		InitializeAdminController()
	}
	return adminController
}
