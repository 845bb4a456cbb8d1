package companies

import (
	"context"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// CompanyRepository интерфейс репозитория реестра компаний
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context, tier *string) ([]*domain.Company, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
// Нужен для защиты от удаления компании с активными бронированиями
type BookingRepository interface {
	CountByCompany(ctx context.Context, company string) (int, error)
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
