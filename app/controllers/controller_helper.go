package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/korlavalasa/villageportal/internal/pkg/usercontext"
)

const mainLayout = "layouts/main"

// viewData assembles the bindings every page template expects: the page
// title, the current user context and any one-shot flash notice.
func viewData(c *fiber.Ctx, title string, data fiber.Map) fiber.Map {
	userCtx := usercontext.GetUserContext(c)

	if data == nil {
		data = fiber.Map{}
	}
	data["Title"] = title
	data["IsLoggedIn"] = userCtx.IsLoggedIn
	data["IsAdmin"] = userCtx.IsAdmin
	data["Username"] = userCtx.Username
	data["Flash"] = flash.Get(c)

	return data
}

func flashSuccess(c *fiber.Ctx, message, redirectTo string) error {
	fm := fiber.Map{
		"type":    "success",
		"message": message,
	}
	return flash.WithSuccess(c, fm).Redirect(redirectTo, fiber.StatusSeeOther)
}

func flashError(c *fiber.Ctx, message, redirectTo string) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message,
	}
	return flash.WithError(c, fm).Redirect(redirectTo, fiber.StatusSeeOther)
}
