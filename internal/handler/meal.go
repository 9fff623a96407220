package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fitness-tracker/internal/model"
	"github.com/iliyamo/fitness-tracker/internal/nutrition"
	"github.com/iliyamo/fitness-tracker/internal/repository"
)

// MealHandler exposes the meal log. Creation can either take manual macro
// values or resolve them through the external food database. The lookup
// happens before any database write: when it fails or finds nothing, no
// record is created.
type MealHandler struct {
	Meals  *repository.MealRepo
	Lookup nutrition.Lookuper
}

func NewMealHandler(m *repository.MealRepo, l nutrition.Lookuper) *MealHandler {
	if m == nil {
		panic("nil repository passed to NewMealHandler")
	}
	return &MealHandler{Meals: m, Lookup: l}
}

type createMealReq struct {
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	// Lookup resolves the macros from the food database instead of the
	// fields above.
	Lookup bool `json:"lookup"`
}

// Create handles POST /v1/meals.
func (h *MealHandler) Create(c echo.Context) error {
	sess, ok := requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createMealReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || !validDate(req.Date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and date (YYYY-MM-DD) required"})
	}

	m := model.Meal{
		Date:     req.Date,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
	}

	if req.Lookup {
		if h.Lookup == nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "lookup unavailable"})
		}
		facts, err := h.Lookup.Lookup(c.Request().Context(), req.Name)
		if errors.Is(err, nutrition.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "food not found"})
		}
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "lookup unavailable"})
		}
		if facts.Name != "" {
			m.Name = facts.Name
		}
		m.Calories = facts.Calories
		m.Protein = facts.Protein
		m.Carbs = facts.Carbs
		m.Fats = facts.Fats
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Meals.Create(ctx, sess, m)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveSession) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create meal failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// List handles GET /v1/meals with an optional ?date= filter.
func (h *MealHandler) List(c echo.Context) error {
	sess, ok := requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	date, err := dateFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date filter"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	list, err := h.Meals.ListByOwner(ctx, sess, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list meals failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"meals": list})
}

// Complete handles POST /v1/meals/:id/complete.
func (h *MealHandler) Complete(c echo.Context) error {
	sess, ok := requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid meal id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Meals.MarkDone(ctx, sess, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "meal not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update meal failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "completed": true})
}
