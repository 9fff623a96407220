package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fitness-tracker/internal/nutrition"
)

// NutritionHandler is the pass-through to the external food database. It
// never writes to storage; callers log a meal separately if they want one.
type NutritionHandler struct {
	Lookup nutrition.Lookuper
}

func NewNutritionHandler(l nutrition.Lookuper) *NutritionHandler {
	return &NutritionHandler{Lookup: l}
}

// Search handles GET /v1/nutrition/search?q=. A missing match answers 404
// and an unreachable food database answers 503; neither creates a record.
func (h *NutritionHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q is required"})
	}
	if h.Lookup == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "lookup unavailable"})
	}

	facts, err := h.Lookup.Lookup(c.Request().Context(), q)
	if errors.Is(err, nutrition.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "food not found"})
	}
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "lookup unavailable"})
	}
	return c.JSON(http.StatusOK, facts)
}
