package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cagb07/gestor-centros-app/internal/domain/user"
	"github.com/cagb07/gestor-centros-app/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderSessionToken carries the opaque token issued at login.
	HeaderSessionToken = "X-Session-Token"

	sessionContextKey = "session"
)

func tokenFrom(c echo.Context) string {
	if t := strings.TrimSpace(c.Request().Header.Get(HeaderSessionToken)); t != "" {
		return t
	}
	// also accept Authorization: Bearer <token>
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// Session resolves the request's token against the store and attaches
// the session context; requests without a valid session get 401.
func Session(store session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := tokenFrom(c)
			if token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing session token"})
			}
			sess, err := store.Get(c.Request().Context(), token)
			if errors.Is(err, session.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid or expired session"})
			}
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "session store unavailable"})
			}
			c.Set(sessionContextKey, sess)
			return next(c)
		}
	}
}

// FromContext returns the session attached by the Session middleware,
// or nil outside of it.
func FromContext(c echo.Context) *session.Session {
	sess, _ := c.Get(sessionContextKey).(*session.Session)
	return sess
}

// RequireRole gates a route group to the given roles. Must run after
// Session.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := FromContext(c)
			if sess == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing session"})
			}
			for _, r := range roles {
				if sess.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
		}
	}
}
