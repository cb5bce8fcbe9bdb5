package delete_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Wainainajnr/slotallocation/internal/api/handlers"
	"github.com/Wainainajnr/slotallocation/internal/domain"
	slotsService "github.com/Wainainajnr/slotallocation/internal/service/slots"
)

type stubService struct {
	slots []domain.Slot
	err   error

	gotDay     string
	gotHour    string
	gotStudent string
}

func (s *stubService) DeleteBooking(ctx context.Context, day, hour, studentName string) ([]domain.Slot, error) {
	s.gotDay, s.gotHour, s.gotStudent = day, hour, studentName
	return s.slots, s.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandle_JSONBody(t *testing.T) {
	svc := &stubService{slots: []domain.Slot{{Hour: "09", Capacity: 4, Available: 4}}}
	h := NewHandler(svc, noopLogger{})

	req := httptest.NewRequest(http.MethodDelete, "/admin/book",
		strings.NewReader(`{"date":"2025-01-06","hour":"09","student_name":"Alice"}`))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-01-06", svc.gotDay)
	assert.Equal(t, "09", svc.gotHour)
	assert.Equal(t, "Alice", svc.gotStudent)

	var envelope handlers.ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "Booking removed", envelope.Message)
	assert.Len(t, envelope.Slots, 1)
}

func TestHandle_QueryParams(t *testing.T) {
	// Параметры принимаются и из query-строки - тело не обязательно
	svc := &stubService{slots: []domain.Slot{}}
	h := NewHandler(svc, noopLogger{})

	req := httptest.NewRequest(http.MethodDelete,
		"/admin/book?date=2025-01-06&hour=09&student_name=Alice", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-01-06", svc.gotDay)
	assert.Equal(t, "09", svc.gotHour)
	assert.Equal(t, "Alice", svc.gotStudent)
}

func TestHandle_InvalidInput(t *testing.T) {
	svc := &stubService{err: slotsService.ErrInvalidInput}
	h := NewHandler(svc, noopLogger{})

	req := httptest.NewRequest(http.MethodDelete, "/admin/book", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope handlers.ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
}
