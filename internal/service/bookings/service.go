package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CarpenterService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-CarpenterService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-CarpenterService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	slotRepo        SlotRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		slotRepo:        slotRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID вместе с временным диапазоном
// слота и именем карпентера
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingDetailsResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	details, err := s.reservationRepo.GetDetails(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainDetails(details), nil
}

// Confirm переводит бронирование в статус confirmed
// Если бронирование не существует, возвращает ErrReservationNotFound
func (s *Service) Confirm(ctx context.Context, id int64) error {
	s.logger.Info("Confirm: confirming reservation id=%d", id)

	if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusConfirmed); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Confirm: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Confirm: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed reservation id=%d", id)
	return nil
}

// Cancel отменяет бронирование: удаляет запись и возвращает слот
// в доступное состояние. Обе записи меняются в одной транзакции,
// чтобы инвариант доступности слота не нарушался
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Cancel - get reservation: %v", ErrInternal, err)
		}

		if err := s.reservationRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("%w: Cancel - delete reservation: %v", ErrInternal, err)
		}

		if err := s.slotRepo.MarkAvailable(txCtx, res.SlotID); err != nil {
			return fmt.Errorf("%w: Cancel - release slot: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: failed to cancel reservation id=%d: %v", id, err)
		return err
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d, slot released", id)
	return nil
}
