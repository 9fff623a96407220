package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fitness-tracker/internal/repository"
)

// ProgressHandler exposes the body-metric log.
type ProgressHandler struct {
	Progress *repository.ProgressRepo
}

func NewProgressHandler(p *repository.ProgressRepo) *ProgressHandler {
	if p == nil {
		panic("nil repository passed to NewProgressHandler")
	}
	return &ProgressHandler{Progress: p}
}

type createProgressReq struct {
	Date     string  `json:"date"`
	WeightKG float64 `json:"weight_kg"`
	Notes    string  `json:"notes"`
}

// Create handles POST /v1/progress.
func (h *ProgressHandler) Create(c echo.Context) error {
	sess, ok := requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createProgressReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !validDate(req.Date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date (YYYY-MM-DD) required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Progress.Create(ctx, sess, req.Date, req.WeightKG, req.Notes)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveSession) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create progress entry failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// List handles GET /v1/progress with an optional ?date= filter.
func (h *ProgressHandler) List(c echo.Context) error {
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

	list, err := h.Progress.ListByOwner(ctx, sess, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list progress failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"progress": list})
}

// Complete handles POST /v1/progress/:id/complete.
func (h *ProgressHandler) Complete(c echo.Context) error {
	sess, ok := requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid progress id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Progress.MarkDone(ctx, sess, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "progress entry not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update progress failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "completed": true})
}
