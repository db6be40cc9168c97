package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/spendwise/spendwise/internal/domain"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// UserKey is the context key for the authenticated user
	UserKey contextKey = "user"
	// SessionTokenKey is the context key for the raw session token
	SessionTokenKey contextKey = "session_token"
	// SessionCookieName is the name of the session cookie
	SessionCookieName = "spendwise_session"
)

// SessionValidator resolves a session token to its user
type SessionValidator interface {
	UserFromSession(token string) (*domain.User, error)
}

// SessionMiddleware gates protected routes on a valid session cookie
type SessionMiddleware struct {
	sessions      SessionValidator
	secureCookies bool
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(sessions SessionValidator, secureCookies bool) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, secureCookies: secureCookies}
}

// RequireSession returns an Echo middleware that loads the authenticated
// user into the request context. Unauthenticated requests are redirected to
// /login before the handler runs, so gated operations never execute without
// a session identity.
func (m *SessionMiddleware) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, "/login")
			}

			user, err := m.sessions.UserFromSession(cookie.Value)
			if err != nil {
				// Invalid or expired session: clear the stale cookie
				log.Debug().Err(err).Msg("Session validation failed")
				ClearSessionCookie(c, m.secureCookies)
				return c.Redirect(http.StatusFound, "/login")
			}

			ctx := context.WithValue(c.Request().Context(), UserKey, user)
			ctx = context.WithValue(ctx, SessionTokenKey, cookie.Value)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// CurrentUser extracts the authenticated user from the context
func CurrentUser(c echo.Context) *domain.User {
	if user, ok := c.Request().Context().Value(UserKey).(*domain.User); ok {
		return user
	}
	return nil
}

// SessionToken extracts the raw session token from the context
func SessionToken(c echo.Context) string {
	if token, ok := c.Request().Context().Value(SessionTokenKey).(string); ok {
		return token
	}
	return ""
}

// SetSessionCookie attaches the session token to the response as an
// HttpOnly cookie with the given lifetime
func SetSessionCookie(c echo.Context, token string, ttl time.Duration, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie
func ClearSessionCookie(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
