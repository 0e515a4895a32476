package models

import (
	"time"

	"github.com/m04kA/SMC-CarpenterService/internal/domain"
)

// BookingDetailsResponse ответ с данными бронирования
// Имена полей фиксированы контрактом фронтенда
type BookingDetailsResponse struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"user_name"`
	Status    string    `json:"status"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Carpenter string    `json:"carpenter"`
}

// FromDomainDetails конвертирует domain модель в DTO
func FromDomainDetails(d *domain.ReservationDetails) *BookingDetailsResponse {
	if d == nil {
		return nil
	}

	return &BookingDetailsResponse{
		ID:        d.ID,
		UserName:  d.UserName,
		Status:    string(d.Status),
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Carpenter: d.CarpenterName,
	}
}
