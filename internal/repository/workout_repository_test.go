package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/fitness-tracker/internal/auth"
)

func TestWorkoutRepoCreateStampsOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepo(db)
	sess := auth.Session{UserID: 7, Email: "a@x.com"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO workouts (user_id, date, name, duration_min) VALUES (?,?,?,?)")).
		WithArgs(uint64(7), "2024-01-01", "Leg Day", uint32(45)).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := repo.Create(context.Background(), sess, "2024-01-01", "Leg Day", 45)
	require.NoError(t, err)
	assert.Equal(t, uint64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutRepoCreateWithoutSession(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewWorkoutRepo(db)

	_, err := repo.Create(context.Background(), auth.Session{}, "2024-01-01", "Leg Day", 45)
	assert.ErrorIs(t, err, ErrNoActiveSession)
}

func TestWorkoutRepoListByOwnerIsScoped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepo(db)
	sess := auth.Session{UserID: 7, Email: "a@x.com"}

	legDay := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pushDay := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "date", "name", "duration_min", "completed", "created_at"}).
		AddRow(1, 7, legDay, "Leg Day", 45, false, time.Now().UTC()).
		AddRow(2, 7, pushDay, "Push Day", 60, true, time.Now().UTC())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id,user_id,date,name,duration_min,completed,created_at FROM workouts WHERE user_id=? ORDER BY id")).
		WithArgs(uint64(7)).
		WillReturnRows(rows)

	list, err := repo.ListByOwner(context.Background(), sess, nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// insertion order, never re-sorted by date
	assert.Equal(t, uint64(1), list[0].ID)
	assert.Equal(t, "Leg Day", list[0].Name)
	assert.Equal(t, "2024-01-01", list[0].Date)
	assert.True(t, list[1].Completed)
}

func TestWorkoutRepoListByOwnerDateFilter(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepo(db)
	sess := auth.Session{UserID: 7, Email: "a@x.com"}
	date := "2024-01-01"

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id,user_id,date,name,duration_min,completed,created_at FROM workouts WHERE user_id=? AND date=? ORDER BY id")).
		WithArgs(uint64(7), date).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "name", "duration_min", "completed", "created_at"}))

	list, err := repo.ListByOwner(context.Background(), sess, &date)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkoutRepoMarkDone(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepo(db)
	sess := auth.Session{UserID: 7, Email: "a@x.com"}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE workouts SET completed=1 WHERE id=? AND user_id=?")).
		WithArgs(uint64(11), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkDone(context.Background(), sess, 11))
}

func TestWorkoutRepoMarkDoneForeignIDBehavesLikeMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepo(db)
	sess := auth.Session{UserID: 7, Email: "a@x.com"}

	// the row exists but belongs to another user: the owner-scoped UPDATE
	// touches nothing and the caller sees plain not-found
	mock.ExpectExec(regexp.QuoteMeta("UPDATE workouts SET completed=1 WHERE id=? AND user_id=?")).
		WithArgs(uint64(99), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkDone(context.Background(), sess, 99)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestWorkoutRepoGetByIDForOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkoutRepo(db)
	sess := auth.Session{UserID: 7, Email: "a@x.com"}

	rows := sqlmock.NewRows([]string{"id", "user_id", "date", "name", "duration_min", "completed", "created_at"}).
		AddRow(11, 7, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Leg Day", 45, true, time.Now().UTC())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id,user_id,date,name,duration_min,completed,created_at FROM workouts WHERE id=? AND user_id=? LIMIT 1")).
		WithArgs(uint64(11), uint64(7)).
		WillReturnRows(rows)

	w, err := repo.GetByIDForOwner(context.Background(), sess, 11)
	require.NoError(t, err)
	assert.Equal(t, "Leg Day", w.Name)
	assert.True(t, w.Completed)
}
