package disable_slot

import (
	"context"

	disableSlot "github.com/dkomnin/APEC-BookingService/internal/usecase/disable_slot"
)

type DisableSlotUseCase interface {
	Execute(ctx context.Context, req *disableSlot.Request) (*disableSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
