package get_daily_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
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
}

func (s *stubService) GetDailySlots(ctx context.Context, day string) ([]domain.Slot, error) {
	return s.slots, s.err
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandle_Success(t *testing.T) {
	svc := &stubService{slots: []domain.Slot{
		{Hour: "07", Capacity: 4, Booked: 1, Available: 3, Students: []string{"Alice"}},
		{Hour: "08", Capacity: 4, Available: 4},
	}}
	h := NewHandler(svc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/admin/daily?date=2025-01-06", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	// Успешный ответ - сырой массив слотов, без конверта
	var views []handlers.SlotView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, "07", views[0].Hour)
	assert.Equal(t, 3, views[0].Available)
	assert.Equal(t, []string{"Alice"}, views[0].Students)
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&stubService{}, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/admin/daily", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope handlers.ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "Missing required field: date", envelope.Message)
}

func TestHandle_InvalidDate(t *testing.T) {
	svc := &stubService{err: slotsService.ErrInvalidInput}
	h := NewHandler(svc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/admin/daily?date=garbage", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope handlers.ActionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Invalid date format, expected YYYY-MM-DD", envelope.Message)
}

func TestHandle_InternalError(t *testing.T) {
	svc := &stubService{err: errors.New("boom")}
	h := NewHandler(svc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/admin/daily?date=2025-01-06", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
