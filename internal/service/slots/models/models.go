package models

import (
	"time"

	"github.com/m04kA/SMC-CarpenterService/internal/domain"
)

// SlotResponse доступный слот в ответе API
// Имена полей фиксированы контрактом фронтенда
type SlotResponse struct {
	ID        int64     `json:"id"`
	Carpenter string    `json:"carpenter"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.AvailableSlot) []SlotResponse {
	resp := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, SlotResponse{
			ID:        s.ID,
			Carpenter: s.CarpenterName,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}
	return resp
}
