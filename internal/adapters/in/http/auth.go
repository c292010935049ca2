package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"restaurant/internal/adapters/out/session"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SessionCookieName is the cookie holding the session token.
const SessionCookieName = "auth_token"

const sessionClaimsKey = "session.claims"

// ErrUnauthorized is returned for secured routes called without a valid session.
var ErrUnauthorized = errors.New("authentication required")

// SessionParser verifies a session token.
type SessionParser interface {
	Parse(token string) (*session.Claims, error)
}

// SessionAuthConfig configures RequireSession.
type SessionAuthConfig struct {
	// Skipper lets a request through without a session.
	Skipper middleware.Skipper
	Parser  SessionParser
}

// RequireSession rejects requests that carry no valid session cookie and
// stores the claims of valid ones on the context.
func RequireSession(config SessionAuthConfig) echo.MiddlewareFunc {
	if config.Skipper == nil {
		config.Skipper = middleware.DefaultSkipper
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if config.Skipper(c) {
				return next(c)
			}

			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return ErrUnauthorized
			}

			claims, err := config.Parser.Parse(cookie.Value)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrUnauthorized, err)
			}

			c.Set(sessionClaimsKey, claims)
			return next(c)
		}
	}
}

// SecuredRouteSkipper skips every route not listed in secured. Keys are
// "METHOD path" with echo route paths.
func SecuredRouteSkipper(secured map[string]bool) middleware.Skipper {
	return func(c echo.Context) bool {
		return !secured[c.Request().Method+" "+c.Path()]
	}
}

// SessionClaims returns the claims RequireSession stored, if any.
func SessionClaims(c echo.Context) (*session.Claims, bool) {
	claims, ok := c.Get(sessionClaimsKey).(*session.Claims)
	return claims, ok
}

// CookieConfig shapes the session cookie.
type CookieConfig struct {
	Secure bool
}

func (cfg CookieConfig) session(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (cfg CookieConfig) expired() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
