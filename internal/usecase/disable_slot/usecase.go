package disable_slot

import (
	"context"
	"fmt"
	"strings"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
	"github.com/dkomnin/APEC-BookingService/pkg/ptr"
)

// UseCase use case административной блокировки слота
// Блокировка не может накрыть уже допущенное бронирование: админ сначала
// удаляет бронирование, затем закрывает интервал.
type UseCase struct {
	catalog      *domain.Catalog
	bookingRepo  BookingRepository
	disabledRepo DisabledSlotRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog *domain.Catalog,
	bookingRepo BookingRepository,
	disabledRepo DisabledSlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		bookingRepo:  bookingRepo,
		disabledRepo: disabledRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет блокировку слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DisableSlot: date=%s, room=%s, start=%d, blocks=%d",
		req.Date, req.RoomCode, req.StartHour, req.Blocks)

	// 1. Валидация входных данных
	if err := uc.validate(req); err != nil {
		uc.logger.Warn("DisableSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата должна входить в даты события
	if !uc.catalog.IsEventDate(req.Date) {
		uc.logger.Warn("DisableSlot: date %s is not an event date", req.Date)
		return nil, ErrInvalidDate
	}

	// 3. Комната должна существовать в каталоге
	room, ok := uc.catalog.Room(req.RoomCode)
	if !ok {
		uc.logger.Warn("DisableSlot: unknown room %s", req.RoomCode)
		return nil, ErrRoomNotFound
	}

	// 4. Длительность обрезается до лимита так же, как у бронирований,
	// интервал должен укладываться в рабочие часы
	blocks := clampBlocks(req.Blocks, uc.catalog.MaxBlocks())
	endHour := req.StartHour + blocks
	if !uc.catalog.ValidStartHour(req.StartHour, endHour) {
		uc.logger.Warn("DisableSlot: invalid hours %d-%d", req.StartHour, endHour)
		return nil, ErrInvalidHours
	}

	requested := domain.HourRange{Start: req.StartHour, End: endHour}

	var result *domain.DisabledSlot

	// 5-7. Проверки пересечений и вставка в одной serializable-транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5. Блокировка не накрывает существующие бронирования
		bookings, err := uc.bookingRepo.ListByFilter(txCtx, domain.BookingsFilter{
			Date:     req.Date,
			RoomCode: ptr.Ptr(room.Code),
		})
		if err != nil {
			uc.logger.Error("DisableSlot: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		for _, booking := range bookings {
			if requested.Overlaps(booking.Range()) {
				uc.logger.Warn("DisableSlot: interval %d-%d overlaps booking id=%d in %s on %s",
					requested.Start, requested.End, booking.ID, room.Code, req.Date)
				return ErrBookingExists
			}
		}

		// 6. Блокировки не дублируются
		disabled, err := uc.disabledRepo.ListByDate(txCtx, req.Date, ptr.Ptr(room.Code))
		if err != nil {
			uc.logger.Error("DisableSlot: failed to list disabled slots: %v", err)
			return fmt.Errorf("%w: failed to list disabled slots: %v", ErrInternal, err)
		}

		for _, slot := range disabled {
			if requested.Overlaps(slot.Range()) {
				uc.logger.Warn("DisableSlot: interval %d-%d overlaps disabled id=%d in %s on %s",
					requested.Start, requested.End, slot.ID, room.Code, req.Date)
				return ErrAlreadyDisabled
			}
		}

		// 7. Вставка
		slot := &domain.DisabledSlot{
			Date:      req.Date,
			RoomCode:  room.Code,
			StartHour: requested.Start,
			EndHour:   requested.End,
			Note:      normalizeNote(req.Note),
		}

		created, err := uc.disabledRepo.Create(txCtx, slot)
		if err != nil {
			uc.logger.Error("DisableSlot: failed to create disabled slot: %v", err)
			return fmt.Errorf("%w: failed to create disabled slot: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("DisableSlot: disabled slot id=%d in %s on %s %d-%d",
		result.ID, result.RoomCode, result.Date, result.StartHour, result.EndHour)

	return &Response{
		ID:        result.ID,
		Date:      result.Date,
		RoomCode:  result.RoomCode,
		RoomLabel: uc.catalog.LabelOf(result.RoomCode),
		StartHour: result.StartHour,
		EndHour:   result.EndHour,
		Note:      result.Note,
		CreatedAt: result.CreatedAt,
	}, nil
}

// validate валидирует входные данные запроса
func (uc *UseCase) validate(req *Request) error {
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RoomCode) == "" {
		return fmt.Errorf("%w: room is required", ErrInvalidInput)
	}

	if req.Note != nil && len(strings.TrimSpace(*req.Note)) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note is too long", ErrInvalidInput)
	}

	return nil
}

// clampBlocks приводит длительность к допустимому диапазону [MinBlocks, maxBlocks]
// Выход за границы не ошибка: значение молча обрезается
func clampBlocks(blocks, maxBlocks int) int {
	if blocks < domain.MinBlocks {
		return domain.MinBlocks
	}
	if blocks > maxBlocks {
		return maxBlocks
	}
	return blocks
}

// normalizeNote обрезает пробелы, пустая строка превращается в отсутствие заметки
func normalizeNote(note *string) *string {
	if note == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*note)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
