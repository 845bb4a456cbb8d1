package disabledslots

import (
	"context"
	"errors"
	"fmt"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
	disabledRepo "github.com/dkomnin/APEC-BookingService/internal/infra/storage/disabledslot"
	"github.com/dkomnin/APEC-BookingService/internal/service/disabledslots/models"
)

// Service сервис для чтения и снятия административных блокировок
type Service struct {
	catalog      *domain.Catalog
	disabledRepo DisabledSlotRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса блокировок
func NewService(catalog *domain.Catalog, disabledRepo DisabledSlotRepository, logger Logger) *Service {
	return &Service{
		catalog:      catalog,
		disabledRepo: disabledRepo,
		logger:       logger,
	}
}

// List получает блокировки на дату с опциональным фильтром по комнате
func (s *Service) List(ctx context.Context, req *models.ListDisabledSlotsRequest) (*models.DisabledSlotListResponse, error) {
	if !s.catalog.IsEventDate(req.Date) {
		s.logger.Warn("List: date %s is not an event date", req.Date)
		return nil, ErrInvalidDate
	}

	if req.RoomCode != nil {
		if _, ok := s.catalog.Room(*req.RoomCode); !ok {
			s.logger.Warn("List: unknown room %s", *req.RoomCode)
			return nil, ErrRoomNotFound
		}
	}

	slots, err := s.disabledRepo.ListByDate(ctx, req.Date, req.RoomCode)
	if err != nil {
		s.logger.Error("List: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDisabledSlotList(slots), nil
}

// Remove снимает блокировку слота
func (s *Service) Remove(ctx context.Context, id int64) error {
	s.logger.Info("Remove: removing disabled slot id=%d", id)

	if err := s.disabledRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, disabledRepo.ErrSlotNotFound) {
			s.logger.Warn("Remove: disabled slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Remove: repository error for disabled slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Remove: removed disabled slot id=%d", id)
	return nil
}
