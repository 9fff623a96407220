package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/fitness-tracker/internal/utils"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestUserRepoRegister(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (email, password_hash) VALUES (?,?)")).
		WithArgs("a@x.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := repo.Register(context.Background(), "a@x.com", "pw1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepoRegisterDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("a@x.com", sqlmock.AnyArg()).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'a@x.com' for key 'uq_users_email'"))

	_, err := repo.Register(context.Background(), "a@x.com", "whatever", bcrypt.MinCost)
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestUserRepoRegisterKeepsEmailExact(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	// the email must be stored exactly as supplied, no folding or trimming
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("A@X.com ", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 1))

	_, err := repo.Register(context.Background(), "A@X.com ", "pw1", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func userRow(t *testing.T, id uint64, email, password string) *sqlmock.Rows {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
		AddRow(id, email, hash, time.Now().UTC())
}

func TestUserRepoAuthenticate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id,email,password_hash,created_at FROM users WHERE email=? LIMIT 1")).
		WithArgs("a@x.com").
		WillReturnRows(userRow(t, 1, "a@x.com", "pw1"))

	u, err := repo.Authenticate(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), u.ID)
	assert.Equal(t, "a@x.com", u.Email)
}

func TestUserRepoAuthenticateWrongPassword(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id,email,password_hash,created_at FROM users WHERE email=?")).
		WithArgs("a@x.com").
		WillReturnRows(userRow(t, 1, "a@x.com", "pw1"))

	_, err := repo.Authenticate(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserRepoAuthenticateUnknownEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id,email,password_hash,created_at FROM users WHERE email=?")).
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	// an unknown email must be indistinguishable from a wrong password
	_, err := repo.Authenticate(context.Background(), "nobody@x.com", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
