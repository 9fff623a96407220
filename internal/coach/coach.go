// Package coach is the stateless motivational responder. It holds no
// invariants and touches no storage; it simply picks a line from a pool.
package coach

import "math/rand"

// DefaultPool is the built-in set of responses served by the coach
// endpoint.
var DefaultPool = []string{
	"Strong work. Same time tomorrow?",
	"Consistency beats intensity. Keep showing up.",
	"Hydrate, stretch, and log that session.",
	"Every rep counts, even the ugly ones.",
	"Rest is training too. Listen to your body.",
	"Small steps daily. That's how progress looks.",
}

// Pick returns one response from the pool using the provided random source.
// An empty pool yields the empty string.
func Pick(pool []string, rng *rand.Rand) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[rng.Intn(len(pool))]
}
