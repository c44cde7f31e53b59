package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/korlavalasa/villageportal/app/models"
	"github.com/korlavalasa/villageportal/app/repository"
)

const (
	homeNewsCount  = 3
	homeEventCount = 4
)

// HandleHome renders the home page: the village profile, the three newest
// active news articles and the four nearest upcoming events.
func HandleHome(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	info := villageInfoOrDefault(repos.VillageInfo)

	newsItems, err := repos.News.GetRecentActive(homeNewsCount)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load news")
	}

	upcoming, err := repos.Event.GetUpcoming(models.StartOfDay(time.Now()), homeEventCount)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load events")
	}

	return c.Render("home", viewData(c, "Korlavalasa Village", fiber.Map{
		"VillageInfo":    info,
		"NewsItems":      newsItems,
		"UpcomingEvents": upcoming,
	}), mainLayout)
}

// HandleAbout renders the about page from the village profile
func HandleAbout(c *fiber.Ctx) error {
	info := villageInfoOrDefault(repository.GetGlobalRepositories().VillageInfo)

	return c.Render("about", viewData(c, "About Korlavalasa", fiber.Map{
		"VillageInfo": info,
	}), mainLayout)
}

// HandleContact renders the contact page from the village profile
func HandleContact(c *fiber.Ctx) error {
	info := villageInfoOrDefault(repository.GetGlobalRepositories().VillageInfo)

	return c.Render("contact", viewData(c, "Contact Us", fiber.Map{
		"VillageInfo": info,
	}), mainLayout)
}

// villageInfoOrDefault loads the singleton profile, falling back to a zero
// profile when none has been created yet
func villageInfoOrDefault(repo repository.VillageInfoRepository) models.VillageInfo {
	info, err := repo.GetFirst()
	if err != nil {
		return models.VillageInfo{}
	}
	return *info
}
