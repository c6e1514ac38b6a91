package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shelfmark/catalog-api/internal/core/domain"
)

// RBAC enforces role-based access control. Comparison is exact match;
// there is no role hierarchy.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(PrincipalKey).(domain.Principal)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "access forbidden"})
			}
			if _, ok := allowed[principal.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "access forbidden"})
			}
			return next(c)
		}
	}
}
