package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/fitness-tracker/internal/repository"
)

// ShoppingHandler exposes the grocery list.
type ShoppingHandler struct {
	Items *repository.ShoppingRepo
}

func NewShoppingHandler(s *repository.ShoppingRepo) *ShoppingHandler {
	if s == nil {
		panic("nil repository passed to NewShoppingHandler")
	}
	return &ShoppingHandler{Items: s}
}

type createShoppingReq struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Quantity uint32 `json:"quantity"`
}

// Create handles POST /v1/shopping.
func (h *ShoppingHandler) Create(c echo.Context) error {
	sess, ok := requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createShoppingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == "" || !validDate(req.Date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and date (YYYY-MM-DD) required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	id, err := h.Items.Create(ctx, sess, req.Date, req.Name, req.Quantity)
	if err != nil {
		if errors.Is(err, repository.ErrNoActiveSession) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create shopping item failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

// List handles GET /v1/shopping with an optional ?date= filter.
func (h *ShoppingHandler) List(c echo.Context) error {
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

	list, err := h.Items.ListByOwner(ctx, sess, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list shopping items failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": list})
}

// Purchase handles POST /v1/shopping/:id/purchase.
func (h *ShoppingHandler) Purchase(c echo.Context) error {
	sess, ok := requireSession(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	if err := h.Items.MarkPurchased(ctx, sess, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update item failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "purchased": true})
}
