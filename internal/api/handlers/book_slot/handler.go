package book_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CarpenterService/internal/api/handlers"
	bookSlot "github.com/m04kA/SMC-CarpenterService/internal/usecase/book_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "отсутствует slotId или userName"
	msgSlotNotFound       = "слот не найден"
	msgSlotAlreadyBooked  = "слот уже забронирован"
	msgBookedSuccessfully = "слот успешно забронирован"
)

type Handler struct {
	useCase BookSlotUseCase
	logger  Logger
}

func NewHandler(useCase BookSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обязательные поля проверяем до обращения к хранилищу
	if req.SlotID == 0 || req.UserName == "" {
		h.logger.Warn("POST /book - Missing required fields: slot_id=%d, user_name=%q",
			req.SlotID, req.UserName)
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookSlot.ErrSlotNotFound):
			h.logger.Warn("POST /book - Slot not found: slot_id=%d", req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, bookSlot.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /book - Slot already booked: slot_id=%d", req.SlotID)
			handlers.RespondBadRequest(w, msgSlotAlreadyBooked)

		case errors.Is(err, bookSlot.ErrInvalidInput):
			h.logger.Warn("POST /book - Invalid input: slot_id=%d, error=%v", req.SlotID, err)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /book - Failed to book slot: slot_id=%d, error=%v", req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book - Slot booked successfully: slot_id=%d, reservation_id=%d",
		req.SlotID, result.ReservationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, msgBookedSuccessfully))
}
