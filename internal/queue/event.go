// Package queue defines message payloads exchanged over the message broker.
package queue

// WorkoutCompletedEvent is published when a workout is marked done. It
// contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database.
type WorkoutCompletedEvent struct {
	WorkoutID   uint64 `json:"workout_id"`
	UserID      uint64 `json:"user_id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	DurationMin uint32 `json:"duration_min"`
	CompletedAt string `json:"completed_at"`
}
