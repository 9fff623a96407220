package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/iliyamo/fitness-tracker/internal/model"
	"github.com/iliyamo/fitness-tracker/internal/utils"
)

// UserRepo provides credential storage over the `users` table. Emails are
// compared exactly as stored: no trimming, no case folding. Uniqueness is
// enforced by the UNIQUE KEY on users.email, so a concurrent duplicate
// insert surfaces as a duplicate-key error rather than a second account.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// dummyHash is a valid bcrypt digest of an unrelated string. Authenticate
// verifies against it when the email is unknown so the unknown-email and
// wrong-password paths perform the same work.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Register hashes the password and inserts a new user, returning its ID.
// A duplicate email yields ErrEmailExists regardless of which side of the
// race the caller was on.
func (r *UserRepo) Register(ctx context.Context, email, password string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash) VALUES (?,?)",
		email, hash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Authenticate looks up the user by exact email and verifies the password.
// Every failure mode returns ErrInvalidCredentials; a missing account still
// runs a bcrypt comparison so the two cases keep the same shape.
func (r *UserRepo) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,created_at FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err == sql.ErrNoRows {
		utils.VerifyPassword(dummyHash, password)
		return model.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, err
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,created_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
