package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fitness-tracker/internal/queue"
	"github.com/iliyamo/fitness-tracker/internal/repository"
	queue_publisher "github.com/iliyamo/fitness-tracker/internal/service"
)

// WorkoutHandler exposes the workout log. All endpoints operate strictly on
// the authenticated user's own records.
type WorkoutHandler struct {
	Workouts *repository.WorkoutRepo
	// PublishEvents controls whether completion events are sent to the
	// broker. Disabled in tests.
	PublishEvents bool
}

func NewWorkoutHandler(w *repository.WorkoutRepo, publishEvents bool) *WorkoutHandler {
	if w == nil {
		panic("nil repository passed to NewWorkoutHandler")
	}
	return &WorkoutHandler{Workouts: w, PublishEvents: publishEvents}
}

type createWorkoutReq struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	DurationMin uint32 `json:"duration_min"`
}

// Create handles POST /v1/workouts.
func (h *WorkoutHandler) Create(c echo.Context) error {
	sess, ok := requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createWorkoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || !validDate(req.Date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and date (YYYY-MM-DD) required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Workouts.Create(ctx, sess, req.Date, req.Name, req.DurationMin)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveSession) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create workout failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// List handles GET /v1/workouts with an optional ?date= filter.
func (h *WorkoutHandler) List(c echo.Context) error {
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

	list, err := h.Workouts.ListByOwner(ctx, sess, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list workouts failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"workouts": list})
}

// Complete handles POST /v1/workouts/:id/complete. A foreign id answers
// exactly like a missing one. On success a workout.completed event is
// published; a broker failure never affects the response because the flag
// is already committed.
func (h *WorkoutHandler) Complete(c echo.Context) error {
	sess, ok := requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid workout id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Workouts.MarkDone(ctx, sess, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "workout not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update workout failed"})
	}

	if h.PublishEvents {
		if w, err := h.Workouts.GetByIDForOwner(ctx, sess, id); err == nil {
			ev := queue.WorkoutCompletedEvent{
				WorkoutID:   w.ID,
				UserID:      w.UserID,
				Name:        w.Name,
				Date:        w.Date,
				DurationMin: w.DurationMin,
				CompletedAt: time.Now().UTC().Format(time.RFC3339),
			}
			go func() {
				pubCtx, pubCancel := context.WithTimeout(context.Background(), dbTimeout)
				defer pubCancel()
				_ = queue_publisher.PublishWorkoutCompleted(pubCtx, ev)
			}()
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"id": id, "completed": true})
}
