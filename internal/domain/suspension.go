package domain

import "time"

// Suspension is an administrative block on one hour of one day.
// It may only exist while the hour has zero bookings
type Suspension struct {
	ID   int64
	Day  string // YYYY-MM-DD
	Hour string

	CreatedAt time.Time
}
