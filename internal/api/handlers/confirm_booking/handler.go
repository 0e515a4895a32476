package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CarpenterService/internal/api/handlers"
	"github.com/m04kA/SMC-CarpenterService/internal/service/bookings"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgNotFound             = "бронирование не найдено"
	msgConfirmed            = "бронирование подтверждено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// MessageResponse тело успешного ответа
type MessageResponse struct {
	Message string `json:"message"`
}

// Handle PUT /api/booking/{reservationId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /booking/{id}/confirm - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Confirm(r.Context(), reservationID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrReservationNotFound):
			h.logger.Warn("PUT /booking/{id}/confirm - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /booking/{id}/confirm - Failed to confirm reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /booking/{id}/confirm - Reservation confirmed successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: msgConfirmed})
}
