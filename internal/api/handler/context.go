package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shelfmark/catalog-api/internal/api/middleware"
	"github.com/shelfmark/catalog-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware.
// Presence proves the middleware ran; a gated handler reached without it is
// a wiring bug surfaced as 401 rather than a panic.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok || principal.Username == "" {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}
