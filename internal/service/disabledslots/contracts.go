package disabledslots

import (
	"context"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// DisabledSlotRepository интерфейс репозитория административных блокировок
type DisabledSlotRepository interface {
	ListByDate(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
