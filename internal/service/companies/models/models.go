package models

import (
	"time"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// Request модели

// AddCompanyRequest запрос на добавление компании в реестр
type AddCompanyRequest struct {
	Name string `json:"name"`
	Tier string `json:"tier"`
}

// ListCompaniesRequest запрос списка компаний
type ListCompaniesRequest struct {
	Tier *string `json:"tier,omitempty"` // Фильтр по уровню (опционально)
}

// Response модели

// CompanyResponse ответ с данными компании
type CompanyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Tier string `json:"tier"`

	CreatedAt time.Time `json:"createdAt"`
}

// CompanyListResponse ответ со списком компаний
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

// Методы конвертации

// FromDomainCompany конвертирует domain модель в DTO
func FromDomainCompany(c *domain.Company) *CompanyResponse {
	if c == nil {
		return nil
	}

	return &CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Tier:      c.Tier,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainCompanyList конвертирует список domain моделей в DTO
func FromDomainCompanyList(companies []*domain.Company) *CompanyListResponse {
	result := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		result = append(result, *FromDomainCompany(c))
	}
	return &CompanyListResponse{Companies: result}
}
