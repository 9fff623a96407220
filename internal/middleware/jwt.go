package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/fitness-tracker/internal/auth"  // session binding for the request context
	"github.com/iliyamo/fitness-tracker/internal/utils" // token parsing helpers
)

// SessionAuth returns an Echo middleware that validates a Bearer access
// token and binds the authenticated session into the request context. The
// provided secret must match the one used when issuing tokens. This
// middleware should wrap protected routes so that handlers can retrieve the
// caller's identity via auth.Current(c). The binding is per-request: two
// concurrent requests never share session state.
func SessionAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Read the Authorization header. A valid header starts with
			// "Bearer " followed by the JWT. Anything else is rejected with
			// 401 before the handler runs.
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			userID, email, err := utils.ParseAccessToken(secret, raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			auth.Bind(c, auth.Session{UserID: userID, Email: email})
			return next(c)
		}
	}
}
