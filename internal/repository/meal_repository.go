package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/fitness-tracker/internal/auth"
	"github.com/iliyamo/fitness-tracker/internal/model"
)

// MealRepo provides ownership-scoped access to the `meals` table. Macro
// values are snapshotted at insert time and never updated afterwards.
type MealRepo struct{ DB *sql.DB }

func NewMealRepo(db *sql.DB) *MealRepo { return &MealRepo{DB: db} }

// Create inserts a meal stamped with the session's user id.
func (r *MealRepo) Create(ctx context.Context, sess auth.Session, m model.Meal) (uint64, error) {
	if !sess.Valid() {
		return 0, ErrNoActiveSession
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO meals (user_id, date, name, calories, protein, carbs, fats) VALUES (?,?,?,?,?,?,?)",
		sess.UserID, m.Date, m.Name, m.Calories, m.Protein, m.Carbs, m.Fats)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByOwner returns the session user's meals in insertion order,
// optionally restricted to a single date.
func (r *MealRepo) ListByOwner(ctx context.Context, sess auth.Session, date *string) ([]model.Meal, error) {
	if !sess.Valid() {
		return nil, ErrNoActiveSession
	}
	q := "SELECT id,user_id,date,name,calories,protein,carbs,fats,completed,created_at FROM meals WHERE user_id=?"
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

	out := make([]model.Meal, 0)
	for rows.Next() {
		var m model.Meal
		var d time.Time
		if err := rows.Scan(&m.ID, &m.UserID, &d, &m.Name, &m.Calories, &m.Protein, &m.Carbs, &m.Fats, &m.Completed, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Date = d.Format(dateLayout)
		out = append(out, m)
	}
	return out, rows.Err()
}

// MarkDone flips the completed flag on the session user's meal.
func (r *MealRepo) MarkDone(ctx context.Context, sess auth.Session, id uint64) error {
	if !sess.Valid() {
		return ErrNoActiveSession
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE meals SET completed=1 WHERE id=? AND user_id=?",
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
