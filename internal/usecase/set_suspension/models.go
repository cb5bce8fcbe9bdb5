package set_suspension

import (
	"github.com/Wainainajnr/slotallocation/internal/domain"
)

// Request модель запроса на приостановку/возобновление часа
type Request struct {
	Day    string // Дата YYYY-MM-DD
	Hour   string // Час из набора бронируемых
	Action string // domain.ActionSuspend или domain.ActionUnsuspend
}

// Response модель ответа с пересчитанными слотами дня
type Response struct {
	Day   string
	Slots []domain.Slot
}
