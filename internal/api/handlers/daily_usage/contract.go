package daily_usage

import (
	"context"

	"github.com/dkomnin/APEC-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	DailyUsage(ctx context.Context, req *models.DailyUsageRequest) (*models.DailyUsageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
