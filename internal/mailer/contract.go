package mailer

import (
	"context"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// BookingSource источник бронирований для рассылки
type BookingSource interface {
	ListForDigest(ctx context.Context, date string) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
