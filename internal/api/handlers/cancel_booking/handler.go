package cancel_booking

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
	msgCancelled            = "бронирование отменено, слот снова доступен"
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

// Handle DELETE /api/booking/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /booking/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.Cancel(r.Context(), reservationID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrReservationNotFound):
			h.logger.Warn("DELETE /booking/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /booking/{id} - Failed to cancel reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /booking/{id} - Reservation cancelled successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: msgCancelled})
}
