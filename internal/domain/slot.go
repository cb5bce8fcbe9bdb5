package domain

// Slot is the derived availability state of one hour on one day.
// It is always recomputed from bookings and suspensions, never stored
type Slot struct {
	Hour              string
	Capacity          int
	Booked            int
	Available         int
	Students          []string
	PermanentStudents []string
	Suspended         bool
}

// IsFull returns true if the slot has no available seats
func (s *Slot) IsFull() bool {
	return s.Available <= 0
}

// HasStudent reports whether the student is already booked into the slot
func (s *Slot) HasStudent(name string) bool {
	for _, student := range s.Students {
		if student == name {
			return true
		}
	}
	return false
}

// BuildDaySlots computes the slot list for one day from all bookings of
// that day and the suspended-hour set. Pure function of its inputs.
// Slots come out in BookableHours order, which already ascends;
// the theory hour never appears regardless of store contents
func BuildDaySlots(bookings []*Booking, suspendedHours []string) []Slot {
	suspended := make(map[string]bool, len(suspendedHours))
	for _, h := range suspendedHours {
		suspended[h] = true
	}

	slots := make([]Slot, 0, len(BookableHours))
	for _, hour := range BookableHours {
		students := make([]string, 0, SlotCapacity)
		permanent := make([]string, 0)

		for _, b := range bookings {
			if b.Hour != hour {
				continue
			}
			students = append(students, b.StudentName)
			if b.Permanent {
				permanent = append(permanent, b.StudentName)
			}
		}

		available := SlotCapacity - len(students)
		if available < 0 {
			available = 0
		}

		slots = append(slots, Slot{
			Hour:              hour,
			Capacity:          SlotCapacity,
			Booked:            len(students),
			Available:         available,
			Students:          students,
			PermanentStudents: permanent,
			Suspended:         suspended[hour],
		})
	}

	return slots
}

// CountBookingsForHour counts bookings of one hour within a day's bookings
func CountBookingsForHour(bookings []*Booking, hour string) int {
	count := 0
	for _, b := range bookings {
		if b.Hour == hour {
			count++
		}
	}
	return count
}

// HourHasStudent reports whether the student already holds a booking in the hour
func HourHasStudent(bookings []*Booking, hour, studentName string) bool {
	for _, b := range bookings {
		if b.Hour == hour && b.StudentName == studentName {
			return true
		}
	}
	return false
}
