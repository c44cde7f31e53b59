package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/korlavalasa/villageportal/app/models"
	"github.com/korlavalasa/villageportal/app/repository"
)

const publicPastEventCap = 10

// HandleEventsIndex renders the public events page, partitioned at the
// local-midnight boundary into upcoming (soonest first, unbounded) and
// past (most recent first, capped).
func HandleEventsIndex(c *fiber.Ctx) error {
	eventRepo := repository.GetGlobalRepositories().Event
	today := models.StartOfDay(time.Now())

	upcoming, err := eventRepo.GetUpcoming(today, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch events")
	}

	past, err := eventRepo.GetPast(today, publicPastEventCap)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to fetch events")
	}

	return c.Render("events/index", viewData(c, "Village Events", fiber.Map{
		"UpcomingEvents": upcoming,
		"PastEvents":     past,
	}), mainLayout)
}
