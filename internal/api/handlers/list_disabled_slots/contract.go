package list_disabled_slots

import (
	"context"

	"github.com/dkomnin/APEC-BookingService/internal/service/disabledslots/models"
)

type DisabledSlotService interface {
	List(ctx context.Context, req *models.ListDisabledSlotsRequest) (*models.DisabledSlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
