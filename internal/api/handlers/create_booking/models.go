package create_booking

import (
	createBooking "github.com/Wainainajnr/slotallocation/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date        string `json:"date"` // "2025-01-06"
	Hour        string `json:"hour"` // "07"
	StudentName string `json:"student_name"`
	Permanent   bool   `json:"permanent,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Day:         r.Date,
		Hour:        r.Hour,
		StudentName: r.StudentName,
		Permanent:   r.Permanent,
	}
}
