package domain

// SlotCapacity is the fixed maximum number of students per hour
const SlotCapacity = 4

// TheoryHour is reserved for the theory lesson and is never bookable,
// independent of any suspension records
const TheoryHour = "12"

// BookableHours is the fixed set of bookable hours, ascending.
// The theory hour "12" is deliberately absent
var BookableHours = []string{"07", "08", "09", "10", "11", "13", "14", "15", "16", "17"}

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxStudentNameLength = 100
)

// Suspension actions
const (
	ActionSuspend   = "suspend"
	ActionUnsuspend = "unsuspend"
)

// IsBookableHour reports whether the hour belongs to the bookable set
func IsBookableHour(hour string) bool {
	for _, h := range BookableHours {
		if h == hour {
			return true
		}
	}
	return false
}
