package book_slot

import (
	bookSlot "github.com/m04kA/SMC-CarpenterService/internal/usecase/book_slot"
)

// BookSlotRequest HTTP request model
type BookSlotRequest struct {
	SlotID   int64  `json:"slotId"`
	UserName string `json:"userName"`
}

// BookSlotResponse HTTP response model
type BookSlotResponse struct {
	Message       string `json:"message"`
	ReservationID int64  `json:"reservationId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookSlotRequest) ToUseCaseRequest() *bookSlot.Request {
	return &bookSlot.Request{
		SlotID:   r.SlotID,
		UserName: r.UserName,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSlot.Response, message string) *BookSlotResponse {
	return &BookSlotResponse{
		Message:       message,
		ReservationID: resp.ReservationID,
	}
}
