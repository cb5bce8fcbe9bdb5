package create_booking

import (
	"github.com/Wainainajnr/slotallocation/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	Day         string // Дата YYYY-MM-DD
	Hour        string // Час из набора бронируемых, например "07"
	StudentName string // Имя студента
	Permanent   bool   // Постоянный студент (флаг хранится и отдаётся как есть)
}

// Response модель ответа с пересчитанными слотами дня
type Response struct {
	Day   string        // Дата, на которую создано бронирование
	Slots []domain.Slot // Актуальное состояние всех слотов дня
}
