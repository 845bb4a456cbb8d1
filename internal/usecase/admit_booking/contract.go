package admit_booking

import (
	"context"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	SumBlocksByCompany(ctx context.Context, date, company string) (int, error)
}

// DisabledSlotRepository интерфейс репозитория административных блокировок
type DisabledSlotRepository interface {
	ListByDate(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error)
}

// CompanyRepository интерфейс репозитория реестра компаний
type CompanyRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Company, error)
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
