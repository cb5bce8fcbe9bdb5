package handlers

import (
	"encoding/json"
	"net/http"
)

// ActionResponse единый конверт ответов мутирующих операций портала
type ActionResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Slots   []SlotView `json:"slots,omitempty"`
}

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}

// RespondJSON пишет payload как JSON с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondSuccess пишет успешный конверт с пересчитанными слотами
func RespondSuccess(w http.ResponseWriter, message string, slots []SlotView) {
	RespondJSON(w, http.StatusOK, ActionResponse{
		Success: true,
		Message: message,
		Slots:   slots,
	})
}

// RespondFailure пишет бизнес-отказ: статус 200, success=false.
// Нарушения бизнес-правил - не транспортные ошибки, клиент показывает
// message без разбора статусов
func RespondFailure(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, ActionResponse{
		Success: false,
		Message: message,
	})
}

// RespondBadRequest пишет ошибку валидации запроса
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusBadRequest, ActionResponse{
		Success: false,
		Message: message,
	})
}

// RespondInternalError пишет ответ о внутренней ошибке сервера
func RespondInternalError(w http.ResponseWriter) {
	RespondJSON(w, http.StatusInternalServerError, ActionResponse{
		Success: false,
		Message: "internal server error",
	})
}
