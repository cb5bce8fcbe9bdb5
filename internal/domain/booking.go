package domain

import "time"

// Booking represents one student reserved into one hour of one day.
// A student may appear at most once per (day, hour)
type Booking struct {
	ID          int64
	Day         string // YYYY-MM-DD
	Hour        string // two-digit hour, e.g. "07"
	StudentName string
	Permanent   bool // recurring student; stored and surfaced, not enforced separately

	CreatedAt time.Time
}

// Matches reports whether the booking belongs to the given (day, hour)
func (b *Booking) Matches(day, hour string) bool {
	return b.Day == day && b.Hour == hour
}
