package model

import "time"

// ProgressEntry is a body-metric measurement logged by a user.
type ProgressEntry struct {
	ID        uint64    `json:"id"`         // progress_entries.id
	UserID    uint64    `json:"user_id"`    // progress_entries.user_id
	Date      string    `json:"date"`       // progress_entries.date
	WeightKG  float64   `json:"weight_kg"`  // progress_entries.weight_kg
	Notes     string    `json:"notes"`      // progress_entries.notes
	Completed bool      `json:"completed"`  // progress_entries.completed
	CreatedAt time.Time `json:"created_at"` // progress_entries.created_at
}
