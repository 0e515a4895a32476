package slots

import (
	"context"

	"github.com/m04kA/SMC-CarpenterService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListAvailable(ctx context.Context) ([]*domain.AvailableSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
