package middleware

import (
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/korlavalasa/villageportal/internal/pkg/session"
	"github.com/korlavalasa/villageportal/internal/pkg/usercontext"
)

// newUserContextApp builds an app where /seed/:kind writes a session
// record before the middleware is installed, so the records can be
// shaped freely, including broken ones.
func newUserContextApp(t *testing.T) *fiber.App {
	t.Helper()

	session.NewSessionStore()
	app := fiber.New()

	app.Post("/seed/:kind", func(c *fiber.Ctx) error {
		sess, err := session.GetSessionStore().Get(c)
		require.NoError(t, err)

		switch c.Params("kind") {
		case "good":
			sess.Set(usercontext.AuthKey, true)
			sess.Set(usercontext.KeyUserID, uint(7))
			sess.Set(usercontext.KeyUsername, "admin")
			sess.Set(usercontext.KeyIsAdmin, true)
		case "bad":
			// A user id of the wrong type, as a damaged or tampered
			// store entry would produce
			sess.Set(usercontext.AuthKey, true)
			sess.Set(usercontext.KeyUserID, "seven")
			sess.Set(usercontext.KeyUsername, "admin")
		}
		require.NoError(t, sess.Save())
		return c.SendStatus(fiber.StatusOK)
	})

	app.Use(UserContextMiddleware)
	app.Get("/whoami", func(c *fiber.Ctx) error {
		userCtx, _ := c.Locals("USER_CONTEXT").(usercontext.UserContext)
		if !userCtx.IsLoggedIn {
			return c.SendString("anonymous")
		}
		return c.SendString("user:" + userCtx.Username)
	})

	return app
}

func seedSession(t *testing.T, app *fiber.App, kind string) *http.Cookie {
	t.Helper()

	req, _ := http.NewRequest(http.MethodPost, "/seed/"+kind, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	t.Fatal("no session cookie issued")
	return nil
}

func whoami(t *testing.T, app *fiber.App, cookie *http.Cookie) string {
	t.Helper()

	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestUserContextRecognizesSignedInUser(t *testing.T) {
	app := newUserContextApp(t)
	cookie := seedSession(t, app, "good")

	assert.Equal(t, "user:admin", whoami(t, app, cookie))
}

func TestUserContextWithoutSessionIsAnonymous(t *testing.T) {
	app := newUserContextApp(t)

	assert.Equal(t, "anonymous", whoami(t, app, nil))
}

func TestUserContextSurvivesCorruptedSessionRecord(t *testing.T) {
	app := newUserContextApp(t)
	cookie := seedSession(t, app, "bad")

	// A record with a mistyped user id must degrade to signed-out
	// instead of taking the request down
	assert.Equal(t, "anonymous", whoami(t, app, cookie))
}
