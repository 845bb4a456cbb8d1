package get_availability

import (
	"context"
	"fmt"
	"sort"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
	"github.com/dkomnin/APEC-BookingService/pkg/ptr"
)

// UseCase use case занятости комнаты: объединение бронирований и
// административных блокировок на дату, отсортированное по часу начала
type UseCase struct {
	catalog      *domain.Catalog
	bookingRepo  BookingRepository
	disabledRepo DisabledSlotRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog *domain.Catalog,
	bookingRepo BookingRepository,
	disabledRepo DisabledSlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		bookingRepo:  bookingRepo,
		disabledRepo: disabledRepo,
		logger:       logger,
	}
}

// Execute возвращает занятость комнаты на дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if !uc.catalog.IsEventDate(req.Date) {
		uc.logger.Warn("GetAvailability: date %s is not an event date", req.Date)
		return nil, ErrInvalidDate
	}

	room, ok := uc.catalog.Room(req.RoomCode)
	if !ok {
		uc.logger.Warn("GetAvailability: unknown room %s", req.RoomCode)
		return nil, ErrRoomNotFound
	}

	bookings, err := uc.bookingRepo.ListByFilter(ctx, domain.BookingsFilter{
		Date:     req.Date,
		RoomCode: ptr.Ptr(room.Code),
	})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	disabled, err := uc.disabledRepo.ListByDate(ctx, req.Date, ptr.Ptr(room.Code))
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list disabled slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list disabled slots: %v", ErrInternal, err)
	}

	items := make([]Item, 0, len(bookings)+len(disabled))

	for _, booking := range bookings {
		items = append(items, Item{
			Kind:      KindBooking,
			StartHour: booking.StartHour,
			EndHour:   booking.EndHour,
			Company:   booking.Company,
			Tier:      booking.Tier,
		})
	}

	for _, slot := range disabled {
		items = append(items, Item{
			Kind:      KindDisabled,
			StartHour: slot.StartHour,
			EndHour:   slot.EndHour,
			Note:      slot.Note,
		})
	}

	// Интервалы в комнате не пересекаются, достаточно сортировки по началу
	sort.Slice(items, func(i, j int) bool {
		return items[i].StartHour < items[j].StartHour
	})

	taken := make([][2]int, 0, len(items))
	for _, item := range items {
		taken = append(taken, [2]int{item.StartHour, item.EndHour})
	}

	return &Response{
		Date:      req.Date,
		RoomCode:  room.Code,
		RoomLabel: room.Label(),
		Hours:     uc.catalog.Hours(),
		Taken:     taken,
		Items:     items,
	}, nil
}
