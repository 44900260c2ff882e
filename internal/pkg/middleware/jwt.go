package middleware

import (
	"fmt"
	"strings"

	jwtpkg "github.com/ghostlabs/ghostbank/internal/pkg/jwt"
	"github.com/ghostlabs/ghostbank/internal/pkg/models"
	"github.com/ghostlabs/ghostbank/internal/utils"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			handle, ok := (*claims)["handle"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing handle claim")
			}

			c.Set("user_handle", fmt.Sprintf("%v", handle))

			return next(c)
		}
	}
}
