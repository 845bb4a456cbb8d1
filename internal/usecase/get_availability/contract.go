package get_availability

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
	ListByDate(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
