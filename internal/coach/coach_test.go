package coach

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickDeterministicWithSeed(t *testing.T) {
	pool := []string{"a", "b", "c"}

	r1 := rand.New(rand.NewSource(1))
	r2 := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		assert.Equal(t, Pick(pool, r1), Pick(pool, r2))
	}
}

func TestPickAlwaysFromPool(t *testing.T) {
	pool := []string{"a", "b"}
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		assert.Contains(t, pool, Pick(pool, rng))
	}
}

func TestPickEmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	assert.Equal(t, "", Pick(nil, rng))
}
