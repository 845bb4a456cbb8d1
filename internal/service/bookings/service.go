package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
	bookingRepo "github.com/dkomnin/APEC-BookingService/internal/infra/storage/booking"
	"github.com/dkomnin/APEC-BookingService/internal/service/bookings/models"
)

// Service сервис для чтения и администрирования бронирований
type Service struct {
	catalog     *domain.Catalog
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(catalog *domain.Catalog, bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		catalog:     catalog,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования на дату с опциональными фильтрами по комнате и компании
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for date=%s", req.Date)

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

	bookings, err := s.bookingRepo.ListByFilter(ctx, domain.BookingsFilter{
		Date:     req.Date,
		RoomCode: req.RoomCode,
		Company:  req.Company,
	})
	if err != nil {
		s.logger.Error("List: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings for date=%s", len(bookings), req.Date)
	return models.FromDomainBookingList(bookings), nil
}

// DailyUsage возвращает занятые блоки компании за дату и дневной лимит
// Используется фронтом для подсказки до отправки заявки
func (s *Service) DailyUsage(ctx context.Context, req *models.DailyUsageRequest) (*models.DailyUsageResponse, error) {
	if !s.catalog.IsEventDate(req.Date) {
		s.logger.Warn("DailyUsage: date %s is not an event date", req.Date)
		return nil, ErrInvalidDate
	}

	company := strings.TrimSpace(req.Company)
	if company == "" {
		return nil, fmt.Errorf("%w: company is required", ErrInvalidInput)
	}

	total, err := s.bookingRepo.SumBlocksByCompany(ctx, req.Date, company)
	if err != nil {
		s.logger.Error("DailyUsage: repository error for company=%q date=%s: %v", company, req.Date, err)
		return nil, fmt.Errorf("%w: DailyUsage - repository error: %v", ErrInternal, err)
	}

	return &models.DailyUsageResponse{
		Date:    req.Date,
		Company: company,
		Total:   total,
		Limit:   s.catalog.MaxBlocks(),
	}, nil
}

// Delete удаляет бронирование (административная операция)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted booking id=%d", id)
	return nil
}
