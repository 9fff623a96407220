// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as handlers
// to distinguish between different failure scenarios and translate them
// into HTTP responses without inspecting error strings.
package repository

import "errors"

// ErrEmailExists is returned when registration is attempted with an email
// that already has an account. Handlers should translate this into an
// HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrInvalidCredentials is returned for any failed authentication attempt.
// It deliberately does not distinguish an unknown email from a wrong
// password; both cases produce this same value.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNoActiveSession is returned when a record operation is attempted
// without an authenticated session.
var ErrNoActiveSession = errors.New("no active session")

// ErrRecordNotFound is returned when a record does not exist for the calling
// owner. A record belonging to a different user produces this same value,
// so callers cannot probe for foreign ids.
var ErrRecordNotFound = errors.New("record not found")
