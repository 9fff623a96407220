package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/fitness-tracker/internal/auth"
	"github.com/iliyamo/fitness-tracker/internal/model"
)

// dateLayout renders DATE columns back to the YYYY-MM-DD strings used on
// the API surface. The driver parses DATE into time.Time (parseTime=true).
const dateLayout = "2006-01-02"

// WorkoutRepo provides ownership-scoped access to the `workouts` table.
// Every query is filtered by the session's user id, so one user's records
// are invisible to another: a foreign id behaves exactly like a
// nonexistent one. Records are append-mostly; the only mutation is
// flipping the completed flag.
type WorkoutRepo struct{ DB *sql.DB }

func NewWorkoutRepo(db *sql.DB) *WorkoutRepo { return &WorkoutRepo{DB: db} }

// Create inserts a workout stamped with the session's user id.
func (r *WorkoutRepo) Create(ctx context.Context, sess auth.Session, date, name string, durationMin uint32) (uint64, error) {
	if !sess.Valid() {
		return 0, ErrNoActiveSession
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO workouts (user_id, date, name, duration_min) VALUES (?,?,?,?)",
		sess.UserID, date, name, durationMin)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByOwner returns the session user's workouts in insertion order,
// optionally restricted to a single date.
func (r *WorkoutRepo) ListByOwner(ctx context.Context, sess auth.Session, date *string) ([]model.Workout, error) {
	if !sess.Valid() {
		return nil, ErrNoActiveSession
	}
	q := "SELECT id,user_id,date,name,duration_min,completed,created_at FROM workouts WHERE user_id=?"
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

	out := make([]model.Workout, 0)
	for rows.Next() {
		var w model.Workout
		var d time.Time
		if err := rows.Scan(&w.ID, &w.UserID, &d, &w.Name, &w.DurationMin, &w.Completed, &w.CreatedAt); err != nil {
			return nil, err
		}
		w.Date = d.Format(dateLayout)
		out = append(out, w)
	}
	return out, rows.Err()
}

// MarkDone flips the completed flag on the session user's workout. The
// UPDATE is scoped by owner first, so zero affected rows means "not found"
// whether the id is missing or belongs to someone else.
func (r *WorkoutRepo) MarkDone(ctx context.Context, sess auth.Session, id uint64) error {
	if !sess.Valid() {
		return ErrNoActiveSession
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE workouts SET completed=1 WHERE id=? AND user_id=?",
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

// GetByIDForOwner returns a single workout owned by the session user.
func (r *WorkoutRepo) GetByIDForOwner(ctx context.Context, sess auth.Session, id uint64) (model.Workout, error) {
	if !sess.Valid() {
		return model.Workout{}, ErrNoActiveSession
	}
	var w model.Workout
	var d time.Time
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,user_id,date,name,duration_min,completed,created_at FROM workouts WHERE id=? AND user_id=? LIMIT 1",
		id, sess.UserID).Scan(&w.ID, &w.UserID, &d, &w.Name, &w.DurationMin, &w.Completed, &w.CreatedAt)
	if err == sql.ErrNoRows {
		return model.Workout{}, ErrRecordNotFound
	}
	if err != nil {
		return model.Workout{}, err
	}
	w.Date = d.Format(dateLayout)
	return w, nil
}
