package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fitness-tracker/internal/auth"
)

// dbTimeout bounds every database call made from a handler.
const dbTimeout = 5 * time.Second

// requireSession fetches the session bound by the JWT middleware. Handlers
// treat a missing binding as unauthorized even though the middleware should
// have rejected the request already.
func requireSession(c echo.Context) (auth.Session, bool) {
	return auth.Current(c)
}

// dateFilter reads the optional ?date= query parameter. It returns nil when
// absent and an error when the value is not a YYYY-MM-DD date.
func dateFilter(c echo.Context) (*string, error) {
	d := c.QueryParam("date")
	if d == "" {
		return nil, nil
	}
	if _, err := time.Parse("2006-01-02", d); err != nil {
		return nil, err
	}
	return &d, nil
}

// validDate reports whether s is a YYYY-MM-DD date.
func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c echo.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
