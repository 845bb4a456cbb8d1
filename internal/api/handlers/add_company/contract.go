package add_company

import (
	"context"

	"github.com/dkomnin/APEC-BookingService/internal/service/companies/models"
)

type CompanyService interface {
	Add(ctx context.Context, req *models.AddCompanyRequest) (*models.CompanyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
