package bookings

import (
	"context"

	"github.com/m04kA/SMC-CarpenterService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetDetails(ctx context.Context, id int64) (*domain.ReservationDetails, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	Delete(ctx context.Context, id int64) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	MarkAvailable(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
