package handlers

import "github.com/Wainainajnr/slotallocation/internal/domain"

// SlotView HTTP-представление одного слота
type SlotView struct {
	Hour              string   `json:"hour"`
	Capacity          int      `json:"capacity"`
	Booked            int      `json:"booked"`
	Available         int      `json:"available"`
	Students          []string `json:"students"`
	PermanentStudents []string `json:"permanentStudents"`
	Suspended         bool     `json:"suspended"`
}

// FromDomainSlots конвертирует слоты домена в HTTP-представление
func FromDomainSlots(slots []domain.Slot) []SlotView {
	views := make([]SlotView, len(slots))
	for i, slot := range slots {
		views[i] = SlotView{
			Hour:              slot.Hour,
			Capacity:          slot.Capacity,
			Booked:            slot.Booked,
			Available:         slot.Available,
			Students:          slot.Students,
			PermanentStudents: slot.PermanentStudents,
			Suspended:         slot.Suspended,
		}
	}
	return views
}
