package book_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarpenterService/internal/domain"
	slotRepo "github.com/m04kA/SMC-CarpenterService/internal/infra/storage/slot"
)

// UseCase use case для бронирования слота
type UseCase struct {
	slotRepo        SlotRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет бронирование слота
//
// Проверка доступности и запись выполняются в одной транзакции:
// строка слота блокируется (FOR UPDATE), флаг снимается условным
// UPDATE с проверкой затронутых строк. Из N конкурентных бронирований
// одного слота ровно одно получает бронь, остальные - ErrSlotAlreadyBooked
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookSlot: slot=%d, user=%q", req.SlotID, req.UserName)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookSlot: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// Блокируем строку слота до конца транзакции
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if !slot.IsAvailable {
			return ErrSlotAlreadyBooked
		}

		// Условный UPDATE - вторая линия защиты от двойного бронирования
		if err := uc.slotRepo.MarkUnavailable(txCtx, req.SlotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
				return ErrSlotAlreadyBooked
			}
			return fmt.Errorf("%w: failed to mark slot unavailable: %v", ErrInternal, err)
		}

		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			SlotID:   req.SlotID,
			UserName: req.UserName,
			Status:   domain.StatusBooked,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			uc.logger.Warn("BookSlot: slot id=%d not found", req.SlotID)
		case errors.Is(err, ErrSlotAlreadyBooked):
			uc.logger.Warn("BookSlot: slot id=%d already booked", req.SlotID)
		default:
			uc.logger.Error("BookSlot: failed to book slot id=%d: %v", req.SlotID, err)
		}
		return nil, err
	}

	uc.logger.Info("BookSlot: successfully created reservation id=%d for slot id=%d",
		result.ID, req.SlotID)

	return &Response{
		ReservationID: result.ID,
		SlotID:        result.SlotID,
		UserName:      result.UserName,
		Status:        string(result.Status),
		CreatedAt:     result.CreatedAt,
	}, nil
}
