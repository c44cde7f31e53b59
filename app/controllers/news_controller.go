package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/korlavalasa/villageportal/app/repository"
)

// HandleNewsIndex renders the public news page. Inactive articles are
// never included; an optional ?q= substring filters title and content.
func HandleNewsIndex(c *fiber.Ctx) error {
	search := c.Query("q")

	newsList, err := repository.GetGlobalRepositories().News.GetActive(search)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch news articles")
	}

	return c.Render("news/index", viewData(c, "Village News", fiber.Map{
		"NewsItems": newsList,
		"Search":    search,
	}), mainLayout)
}
