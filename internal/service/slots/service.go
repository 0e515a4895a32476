package slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CarpenterService/internal/service/slots/models"
)

// Service сервис для чтения доступных слотов
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// ListAvailable возвращает все доступные слоты с именами карпентеров
func (s *Service) ListAvailable(ctx context.Context) ([]models.SlotResponse, error) {
	slots, err := s.slotRepo.ListAvailable(ctx)
	if err != nil {
		s.logger.Error("ListAvailable: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAvailable - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAvailable: fetched %d available slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}
