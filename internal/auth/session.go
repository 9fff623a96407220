package auth

import "github.com/labstack/echo/v4"

// sessionKey is the echo context key under which the bound Session lives.
const sessionKey = "session"

// Session is the runtime binding of "who is currently authenticated" for the
// duration of one request. It is never stored server-side and never shared
// across requests: each request carries its own token and gets its own
// Session, so concurrent callers cannot observe each other's identity.
type Session struct {
	UserID uint64 // identity handle of the authenticated user
	Email  string // email the user authenticated with
}

// Valid reports whether the session refers to an actual user.
func (s Session) Valid() bool { return s.UserID != 0 }

// Bind attaches a session to the current request context, replacing any
// session bound earlier in the chain.
func Bind(c echo.Context, s Session) {
	c.Set(sessionKey, s)
}

// Current returns the session bound to the request, if any.
func Current(c echo.Context) (Session, bool) {
	s, ok := c.Get(sessionKey).(Session)
	if !ok || !s.Valid() {
		return Session{}, false
	}
	return s, true
}

// Clear removes the session binding for the remainder of the request.
func Clear(c echo.Context) {
	c.Set(sessionKey, Session{})
}
