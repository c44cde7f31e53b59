package session

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis"

	"github.com/korlavalasa/villageportal/internal/pkg/cache"
	"github.com/korlavalasa/villageportal/internal/pkg/env"
)

// Sessions slide: the user-context middleware re-saves the session on
// every authenticated request, which renews the cookie expiration.
const (
	DefaultExpiration    = 2 * time.Hour
	RememberMeExpiration = 7 * 24 * time.Hour
)

var sessionStore *session.Store

func NewSessionStore() *session.Store {
	cfg := session.Config{
		CookieHTTPOnly: true,
		// CookieSecure: true, // enable in production with HTTPS
		Expiration: DefaultExpiration,
		KeyLookup:  "cookie:session_id",
	}

	// Back sessions with Redis when the cache server is configured;
	// fall back to fiber's in-memory storage otherwise.
	if cacheClient := cache.GetClient(); cacheClient != nil {
		host := "localhost"
		port := 6379
		addr := cacheClient.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		password := env.GetEnv("CACHE_PASSWORD", "")
		if p := cacheClient.Options().Password; p != "" {
			password = p
		}

		cfg.Storage = redis.New(redis.Config{
			Host:     host,
			Port:     port,
			Password: password,
			Database: 1, // separate database for sessions (cache uses DB 0)
			Reset:    false,
		})
	}

	sessionStore = session.New(cfg)
	return sessionStore
}

func GetSessionStore() *session.Store {
	return sessionStore
}

// SetSessionValue stores a key-value pair in the user's individual session
func SetSessionValue(c *fiber.Ctx, key string, value string) error {
	if sessionStore == nil {
		return fmt.Errorf("session store not initialized")
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return fmt.Errorf("failed to get session: %v", err)
	}

	sess.Set(key, value)
	return sess.Save()
}

// GetSessionValue retrieves a value by key from the user's individual session
func GetSessionValue(c *fiber.Ctx, key string) string {
	if sessionStore == nil {
		return ""
	}

	sess, err := sessionStore.Get(c)
	if err != nil {
		return ""
	}

	value := sess.Get(key)
	if value == nil {
		return ""
	}

	if strValue, ok := value.(string); ok {
		return strValue
	}

	return ""
}
