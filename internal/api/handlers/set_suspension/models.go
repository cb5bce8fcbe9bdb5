package set_suspension

import (
	setSuspension "github.com/Wainainajnr/slotallocation/internal/usecase/set_suspension"
)

// SetSuspensionRequest HTTP request model
// slotId - исторически сложившееся имя поля: клиент передаёт в нём час
type SetSuspensionRequest struct {
	Date   string `json:"date"`
	SlotID string `json:"slotId"`
	Action string `json:"action"` // "suspend" | "unsuspend"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SetSuspensionRequest) ToUseCaseRequest() *setSuspension.Request {
	return &setSuspension.Request{
		Day:    r.Date,
		Hour:   r.SlotID,
		Action: r.Action,
	}
}
