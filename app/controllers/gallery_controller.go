package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/korlavalasa/villageportal/app/repository"
)

// HandleGalleryIndex renders the public gallery, newest uploads first.
// ?category= filters by exact match; the sentinel "All" shows everything.
func HandleGalleryIndex(c *fiber.Ctx) error {
	category := c.Query("category", repository.GalleryCategoryAll)

	images, err := repository.GetGlobalRepositories().Gallery.GetByCategory(category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch gallery images")
	}

	return c.Render("gallery/index", viewData(c, "Village Gallery", fiber.Map{
		"GalleryImages": images,
		"Category":      category,
	}), mainLayout)
}
