package bookings

import (
	"context"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	SumBlocksByCompany(ctx context.Context, date, company string) (int, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
