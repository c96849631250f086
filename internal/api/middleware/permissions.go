package middleware

import (
	"jobboard/internal/api/response"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

// RequirePermissions allows the request through when the caller's role
// holds at least one of the listed permissions. Every listed title is
// checked; a caller without a loaded role is always denied.
func RequirePermissions(titles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || user.Role == nil {
				return response.NoPermission(c)
			}
			if !user.Role.HasAnyPermission(titles...) {
				return response.NoPermission(c)
			}
			return next(c)
		}
	}
}

// RequireRoles allows the request through when the caller holds any of
// the named roles.
func RequireRoles(names ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || user.Role == nil {
				return response.NoPermission(c)
			}
			if !lo.Contains(names, user.Role.Name) {
				return response.NoPermission(c)
			}
			return next(c)
		}
	}
}
