package middleware

import (
	"net/http"
	"strings"

	"equimeet/core/config"
	"equimeet/core/constants"
	"equimeet/core/controller"
	"equimeet/core/errors"
	"equimeet/core/utils"

	"github.com/labstack/echo/v4"
)

// Middleware bundles the request middlewares shared by all modules.
type Middleware struct {
	authCfg config.AuthConfig
}

func NewMiddleware(authCfg config.AuthConfig) *Middleware {
	return &Middleware{authCfg: authCfg}
}

// AuthMiddleware validates the Bearer token and stores the organizer
// claims in the request context.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c, errors.ErrUnauthorized, "Missing Authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c, errors.ErrInvalidTokenFormat, "Authorization header must be a Bearer token")
			}

			claims, err := utils.ParseToken(parts[1], m.authCfg.JWTSecret)
			if err != nil {
				return unauthorized(c, errors.ErrUnauthorized, "Invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, code errors.ErrorCode, message string) error {
	return c.JSON(http.StatusUnauthorized, controller.NewErrorBody(code, message))
}
