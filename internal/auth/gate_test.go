package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateAccepts(t *testing.T) {
	g := NewGate("letmein")

	assert.True(t, g.Accepts("letmein"))
	assert.False(t, g.Accepts("LETMEIN"))
	assert.False(t, g.Accepts(""))
	assert.False(t, g.Accepts("letmein "))
}

func TestGateCheck(t *testing.T) {
	g := NewGate("letmein")

	assert.NoError(t, g.Check("letmein"))
	assert.ErrorIs(t, g.Check("guess"), ErrInvalidRegistrationCode)
}

func TestGateRepeatedAttemptsAllowed(t *testing.T) {
	g := NewGate("letmein")

	// no lockout: a correct code still passes after many failures
	for i := 0; i < 100; i++ {
		assert.False(t, g.Accepts("guess"))
	}
	assert.True(t, g.Accepts("letmein"))
}
