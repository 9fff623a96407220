// Package auth holds the registration gate and the per-request session
// binding. Both are deliberately small: the gate is a single shared-secret
// predicate and the session is nothing more than the authenticated identity
// attached to the current request.
package auth

import (
	"crypto/subtle"
	"errors"
)

// ErrInvalidRegistrationCode is returned by Check when the supplied code
// does not match the configured shared secret. Handlers should translate
// this into an HTTP 403 response.
var ErrInvalidRegistrationCode = errors.New("invalid registration code")

// Gate guards account creation with one static, out-of-band shared code.
// The code is not tied to any individual user and there is no lockout or
// attempt counting; any number of tries is permitted.
type Gate struct {
	code string
}

// NewGate returns a Gate accepting exactly the given code.
func NewGate(code string) Gate { return Gate{code: code} }

// Accepts reports whether the supplied code matches the configured one.
// The comparison is constant time.
func (g Gate) Accepts(code string) bool {
	return subtle.ConstantTimeCompare([]byte(g.code), []byte(code)) == 1
}

// Check is the error-returning form of Accepts.
func (g Gate) Check(code string) error {
	if !g.Accepts(code) {
		return ErrInvalidRegistrationCode
	}
	return nil
}
