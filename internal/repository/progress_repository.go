package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/fitness-tracker/internal/auth"
	"github.com/iliyamo/fitness-tracker/internal/model"
)

// ProgressRepo provides ownership-scoped access to the `progress_entries`
// table.
type ProgressRepo struct{ DB *sql.DB }

func NewProgressRepo(db *sql.DB) *ProgressRepo { return &ProgressRepo{DB: db} }

// Create inserts a progress entry stamped with the session's user id.
func (r *ProgressRepo) Create(ctx context.Context, sess auth.Session, date string, weightKG float64, notes string) (uint64, error) {
	if !sess.Valid() {
		return 0, ErrNoActiveSession
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO progress_entries (user_id, date, weight_kg, notes) VALUES (?,?,?,?)",
		sess.UserID, date, weightKG, notes)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByOwner returns the session user's progress entries in insertion
// order, optionally restricted to a single date.
func (r *ProgressRepo) ListByOwner(ctx context.Context, sess auth.Session, date *string) ([]model.ProgressEntry, error) {
	if !sess.Valid() {
		return nil, ErrNoActiveSession
	}
	q := "SELECT id,user_id,date,weight_kg,notes,completed,created_at FROM progress_entries WHERE user_id=?"
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

	out := make([]model.ProgressEntry, 0)
	for rows.Next() {
		var p model.ProgressEntry
		var d time.Time
		var notes sql.NullString
		if err := rows.Scan(&p.ID, &p.UserID, &d, &p.WeightKG, &notes, &p.Completed, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Date = d.Format(dateLayout)
		p.Notes = notes.String
		out = append(out, p)
	}
	return out, rows.Err()
}

// MarkDone flips the completed flag on the session user's progress entry.
func (r *ProgressRepo) MarkDone(ctx context.Context, sess auth.Session, id uint64) error {
	if !sess.Valid() {
		return ErrNoActiveSession
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE progress_entries SET completed=1 WHERE id=? AND user_id=?",
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
