package delete_booking

import "net/http"

// DeleteBookingRequest HTTP request model
// Клиент шлёт параметры либо JSON-телом, либо query-строкой
type DeleteBookingRequest struct {
	Date        string `json:"date"`
	Hour        string `json:"hour"`
	StudentName string `json:"student_name"`
}

// FillFromQuery дозаполняет пустые поля из query-параметров
func (r *DeleteBookingRequest) FillFromQuery(req *http.Request) {
	q := req.URL.Query()
	if r.Date == "" {
		r.Date = q.Get("date")
	}
	if r.Hour == "" {
		r.Hour = q.Get("hour")
	}
	if r.StudentName == "" {
		r.StudentName = q.Get("student_name")
	}
}
