package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shelfmark/catalog-api/internal/api/metrics"
	"github.com/shelfmark/catalog-api/internal/core/domain"
	"github.com/shelfmark/catalog-api/internal/core/ports"
)

// PrincipalKey is the echo context key under which Auth stores the verified
// principal.
const PrincipalKey = "principal"

// Auth verifies the bearer token and injects the principal into context.
// A missing or malformed Authorization header is 401; a token that fails
// verification (bad signature, expired) is 403. The gate never consults the
// credential store: trust is delegated entirely to the signature.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authorization token required")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "token expired")
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()
			c.Set(PrincipalKey, domain.Principal{
				Username: claims.Username,
				Role:     claims.Role,
			})

			return next(c)
		}
	}
}
