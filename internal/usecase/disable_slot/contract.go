package disable_slot

import (
	"context"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// DisabledSlotRepository интерфейс репозитория административных блокировок
type DisabledSlotRepository interface {
	Create(ctx context.Context, slot *domain.DisabledSlot) (*domain.DisabledSlot, error)
	ListByDate(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
