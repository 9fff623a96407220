package handler

import (
	"math/rand"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fitness-tracker/internal/coach"
)

// CoachHandler serves motivational one-liners. The random source is owned
// by the handler and guarded by a mutex because *rand.Rand is not safe for
// concurrent use.
type CoachHandler struct {
	pool []string
	mu   sync.Mutex
	rng  *rand.Rand
}

func NewCoachHandler(pool []string, rng *rand.Rand) *CoachHandler {
	if len(pool) == 0 {
		pool = coach.DefaultPool
	}
	return &CoachHandler{pool: pool, rng: rng}
}

// Respond handles GET /v1/coach.
func (h *CoachHandler) Respond(c echo.Context) error {
	h.mu.Lock()
	line := coach.Pick(h.pool, h.rng)
	h.mu.Unlock()
	return c.JSON(http.StatusOK, echo.Map{"message": line})
}
