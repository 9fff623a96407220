package database

import (
	"context"
	"database/sql"
	"time"
)

// migrations are idempotent CREATE TABLE statements executed at startup.
// The UNIQUE KEY on users.email is what makes concurrent registration safe:
// two racing inserts for the same email resolve to a duplicate-key error for
// one of them, never two accounts.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS workouts (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		date DATE NOT NULL,
		name VARCHAR(255) NOT NULL,
		duration_min INT UNSIGNED NOT NULL DEFAULT 0,
		completed TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_workouts_user (user_id),
		CONSTRAINT fk_workouts_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS meals (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		date DATE NOT NULL,
		name VARCHAR(255) NOT NULL,
		calories DOUBLE NOT NULL DEFAULT 0,
		protein DOUBLE NOT NULL DEFAULT 0,
		carbs DOUBLE NOT NULL DEFAULT 0,
		fats DOUBLE NOT NULL DEFAULT 0,
		completed TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_meals_user (user_id),
		CONSTRAINT fk_meals_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS progress_entries (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		date DATE NOT NULL,
		weight_kg DOUBLE NOT NULL DEFAULT 0,
		notes TEXT,
		completed TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_progress_user (user_id),
		CONSTRAINT fk_progress_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS shopping_items (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		user_id BIGINT UNSIGNED NOT NULL,
		date DATE NOT NULL,
		name VARCHAR(255) NOT NULL,
		quantity INT UNSIGNED NOT NULL DEFAULT 1,
		purchased TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_shopping_user (user_id),
		CONSTRAINT fk_shopping_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the application tables if they do not exist. It is safe to
// run on every startup.
func Migrate(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
