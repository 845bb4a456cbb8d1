package list_companies

import (
	"context"

	"github.com/dkomnin/APEC-BookingService/internal/service/companies/models"
)

type CompanyService interface {
	List(ctx context.Context, req *models.ListCompaniesRequest) (*models.CompanyListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
