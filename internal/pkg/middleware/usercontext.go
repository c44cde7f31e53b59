package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/korlavalasa/villageportal/internal/pkg/session"
	"github.com/korlavalasa/villageportal/internal/pkg/usercontext"
)

// UserContextMiddleware sets up the complete user context for every request.
// This centralizes session handling so no handler reads the store directly.
func UserContextMiddleware(c *fiber.Ctx) error {
	anonymous := func() error {
		c.Locals("USER_CONTEXT", usercontext.UserContext{
			IsLoggedIn: false,
			IsAdmin:    false,
		})
		c.Locals(usercontext.KeyFromProtected, false)
		c.Locals(usercontext.KeyIsAdmin, false)
		return c.Next()
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		return anonymous()
	}

	userID, ok := sess.Get(usercontext.KeyUserID).(uint)
	if !ok {
		// Missing or corrupted session record; treat as signed out
		return anonymous()
	}

	username, _ := sess.Get(usercontext.KeyUsername).(string)
	isAdmin, _ := sess.Get(usercontext.KeyIsAdmin).(bool)

	userCtx := usercontext.UserContext{
		UserID:     userID,
		Username:   username,
		IsLoggedIn: true,
		IsAdmin:    isAdmin,
	}
	c.Locals("USER_CONTEXT", userCtx)

	c.Locals(usercontext.KeyFromProtected, true)
	c.Locals(usercontext.KeyUsername, username)
	c.Locals(usercontext.KeyUserID, userID)
	c.Locals(usercontext.KeyIsAdmin, isAdmin)

	// Re-save to renew the cookie expiration (sliding session window).
	// The expiry is not stored with the session data, so it must be
	// restored from the remember-me flag before every renewal or the
	// long window would collapse to the default one.
	if remember, _ := sess.Get(usercontext.KeyRememberMe).(bool); remember {
		sess.SetExpiry(session.RememberMeExpiration)
	} else {
		sess.SetExpiry(session.DefaultExpiration)
	}
	if err := sess.Save(); err != nil {
		return anonymous()
	}

	return c.Next()
}
