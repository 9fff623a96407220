package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requestIDHeader is the response header carrying the per-request id.
const requestIDHeader = "X-Request-ID"

// RequestID assigns a random id to every request and echoes it back in the
// response headers so log lines and client reports can be correlated. An id
// supplied by the client is reused as-is.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(requestIDHeader, id)
			return next(c)
		}
	}
}
