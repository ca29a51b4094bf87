package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"wedding-registry-backend/internal/auth"
)

// RequireAdmin guards mutating admin routes with a bearer JWT issued by the
// login endpoint.
func RequireAdmin(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "token ausente")
			}

			claims, err := auth.ValidateToken(jwtSecret, token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "token inválido")
			}

			c.Set("role", claims.Role)
			return next(c)
		}
	}
}
