package get_available_slots

import (
	"net/http"

	"github.com/m04kA/SMC-CarpenterService/internal/api/handlers"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/slots
// Возвращает массив доступных слотов с именами карпентеров
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slots, err := h.service.ListAvailable(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to list available slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Slots listed successfully: count=%d", len(slots))
	handlers.RespondJSON(w, http.StatusOK, slots)
}
