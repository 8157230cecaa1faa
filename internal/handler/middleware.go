package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coride/internal/auth"
	"coride/internal/errors"
	"coride/internal/model"
	"coride/internal/service"
)

// Context keys set by the session middleware.
const (
	ContextKeyClaims    = "user"
	ContextKeySessionID = "session_id"
	ContextKeyUser      = "session_user"
)

// SessionMiddleware resolves the claims placed in the context by echo-jwt to
// the session user. Refresh tokens and cleared sessions are rejected.
func SessionMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextKeyClaims).(*auth.Claims)
			if !ok || claims.Kind != auth.KindAccess {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid token",
					Code:  "UNAUTHORIZED",
				})
			}

			user, err := authService.Current(c.Request().Context(), claims.SessionID())
			if err != nil {
				return respondError(c, err)
			}

			c.Set(ContextKeySessionID, claims.SessionID())
			c.Set(ContextKeyUser, user)
			return next(c)
		}
	}
}

// RequireAdmin rejects session users without the admin role.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !CurrentUser(c).IsAdmin() {
			return respondError(c, errors.ErrForbidden)
		}
		return next(c)
	}
}

// CurrentUser returns the session user, or nil outside SessionMiddleware.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextKeyUser).(*model.User)
	return user
}

// SessionID returns the current session ID.
func SessionID(c echo.Context) string {
	id, _ := c.Get(ContextKeySessionID).(string)
	return id
}
