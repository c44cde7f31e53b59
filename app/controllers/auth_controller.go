package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/korlavalasa/villageportal/app/models"
	"github.com/korlavalasa/villageportal/app/repository"
	"github.com/korlavalasa/villageportal/internal/pkg/session"
	"github.com/korlavalasa/villageportal/internal/pkg/usercontext"
)

// HandleAdminLogin renders the login form and processes credential
// sign-in. Locked accounts are rejected for 30 minutes regardless of
// password correctness.
func HandleAdminLogin(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		if usercontext.IsAdmin(c) {
			return c.Redirect("/admin", fiber.StatusSeeOther)
		}
		return c.Render("auth/login", viewData(c, "Admin Login", nil), mainLayout)
	}

	username := c.FormValue("username")
	password := c.FormValue("password")
	rememberMe := c.FormValue("remember_me") == "1"

	userRepo := repository.GetGlobalRepositories().AdminUser
	result, err := userRepo.Authenticate(username, password)
	if err != nil {
		return flashError(c, fmt.Sprintf("something went wrong: %s", err), "/login")
	}

	if result.Locked {
		return flashError(c, "Account is locked. Try again in 30 minutes.", "/login")
	}
	if !result.Success {
		// notice: do not tell the caller which part of the login failed
		return flashError(c, "Invalid username or password!", "/login")
	}
	if !result.User.HasRole(models.RoleAdmin) {
		return flashError(c, "This account has no admin access.", "/login")
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return flashError(c, fmt.Sprintf("something went wrong: %s", err), "/login")
	}

	sess.Set(usercontext.AuthKey, true)
	sess.Set(usercontext.KeyUserID, result.User.ID)
	sess.Set(usercontext.KeyUsername, result.User.Username)
	sess.Set(usercontext.KeyIsAdmin, true)
	// The chosen window must live in the session data: the expiry itself
	// is not persisted, so every later renewal reads this flag.
	sess.Set(usercontext.KeyRememberMe, rememberMe)
	if rememberMe {
		sess.SetExpiry(session.RememberMeExpiration)
	} else {
		sess.SetExpiry(session.DefaultExpiration)
	}

	if err := sess.Save(); err != nil {
		return flashError(c, fmt.Sprintf("something went wrong: %s", err), "/login")
	}

	return flashSuccess(c, fmt.Sprintf("Welcome back, %s!", result.User.Username), "/admin")
}

// HandleAdminLogout destroys the session and returns to the public site
func HandleAdminLogout(c *fiber.Ctx) error {
	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return flashError(c, "logged out (no session)", "/login")
	}

	if err := sess.Destroy(); err != nil {
		return flashError(c, fmt.Sprintf("something went wrong: %s", err), "/login")
	}

	c.Locals(usercontext.KeyFromProtected, false)

	return flashSuccess(c, "You have been logged out.", "/")
}
