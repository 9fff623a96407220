package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/fitness-tracker/internal/auth"
	"github.com/iliyamo/fitness-tracker/internal/model"
)

// ShoppingRepo provides ownership-scoped access to the `shopping_items`
// table.
type ShoppingRepo struct{ DB *sql.DB }

func NewShoppingRepo(db *sql.DB) *ShoppingRepo { return &ShoppingRepo{DB: db} }

// Create inserts a shopping item stamped with the session's user id.
func (r *ShoppingRepo) Create(ctx context.Context, sess auth.Session, date, name string, quantity uint32) (uint64, error) {
	if !sess.Valid() {
		return 0, ErrNoActiveSession
	}
	if quantity == 0 {
		quantity = 1
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO shopping_items (user_id, date, name, quantity) VALUES (?,?,?,?)",
		sess.UserID, date, name, quantity)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByOwner returns the session user's shopping items in insertion order,
// optionally restricted to a single date.
func (r *ShoppingRepo) ListByOwner(ctx context.Context, sess auth.Session, date *string) ([]model.ShoppingItem, error) {
	if !sess.Valid() {
		return nil, ErrNoActiveSession
	}
	q := "SELECT id,user_id,date,name,quantity,purchased,created_at FROM shopping_items WHERE user_id=?"
	args := []interface{}{sess.UserID}
	if date != nil {
		q += " AND date=?"
		args = append(args, *date)
	}
	q += " ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.ShoppingItem, 0)
	for rows.Next() {
		var s model.ShoppingItem
		var d time.Time
		if err := rows.Scan(&s.ID, &s.UserID, &d, &s.Name, &s.Quantity, &s.Purchased, &s.CreatedAt); err != nil {
			return nil, err
		}
		s.Date = d.Format(dateLayout)
		out = append(out, s)
	}
	return out, rows.Err()
}

// MarkPurchased flips the purchased flag on the session user's item.
func (r *ShoppingRepo) MarkPurchased(ctx context.Context, sess auth.Session, id uint64) error {
	if !sess.Valid() {
		return ErrNoActiveSession
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE shopping_items SET purchased=1 WHERE id=? AND user_id=?",
		id, sess.UserID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrRecordNotFound
	}
	return nil
}
