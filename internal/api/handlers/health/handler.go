package health

import (
	"context"
	"net/http"
	"time"

	"github.com/Wainainajnr/slotallocation/internal/api/handlers"
)

// Pinger проверка доступности БД
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse HTTP response model
type HealthResponse struct {
	OK          bool   `json:"ok"`
	DBConnected bool   `json:"dbConnected"`
	Now         string `json:"now"`
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Handle GET /health
// ok=true даже при недоступной БД: сервис продолжает работать
// на in-memory хранилище, dbConnected показывает деградацию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbConnected := h.db.PingContext(ctx) == nil

	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		OK:          true,
		DBConnected: dbConnected,
		Now:         time.Now().UTC().Format(time.RFC3339),
	})
}
