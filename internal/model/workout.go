package model

import "time"

// Workout records a single training session owned by a user. Records are
// append-mostly: after creation the only mutation is flipping Completed.
//
// Fields:
//
//	ID          – primary key identifier.
//	UserID      – user who created the workout.
//	Date        – calendar day the workout is planned for (YYYY-MM-DD).
//	Name        – short label, e.g. "Leg Day".
//	DurationMin – planned duration in minutes.
//	Completed   – whether the workout has been marked done.
//	CreatedAt   – creation timestamp.
type Workout struct {
	ID          uint64    `json:"id"`           // workouts.id
	UserID      uint64    `json:"user_id"`      // workouts.user_id
	Date        string    `json:"date"`         // workouts.date
	Name        string    `json:"name"`         // workouts.name
	DurationMin uint32    `json:"duration_min"` // workouts.duration_min
	Completed   bool      `json:"completed"`    // workouts.completed
	CreatedAt   time.Time `json:"created_at"`   // workouts.created_at
}
