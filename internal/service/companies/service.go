package companies

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
	companyRepo "github.com/dkomnin/APEC-BookingService/internal/infra/storage/company"
	"github.com/dkomnin/APEC-BookingService/internal/service/companies/models"
)

// Service сервис для работы с реестром компаний
type Service struct {
	catalog     *domain.Catalog
	companyRepo CompanyRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса компаний
func NewService(
	catalog *domain.Catalog,
	companyRepo CompanyRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		catalog:     catalog,
		companyRepo: companyRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// List получает компании реестра, опционально сужая по уровню спонсорства
func (s *Service) List(ctx context.Context, req *models.ListCompaniesRequest) (*models.CompanyListResponse, error) {
	if req.Tier != nil && !s.catalog.HasTier(domain.Tier(*req.Tier)) {
		s.logger.Warn("List: unknown tier %s", *req.Tier)
		return nil, ErrInvalidTier
	}

	companies, err := s.companyRepo.List(ctx, req.Tier)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCompanyList(companies), nil
}

// Add добавляет компанию в реестр
// Имя нормализуется, уровень должен существовать в каталоге
func (s *Service) Add(ctx context.Context, req *models.AddCompanyRequest) (*models.CompanyResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxCompanyNameLength {
		return nil, fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}
	// Селектор свободного ввода зарезервирован и не может быть именем компании
	if name == domain.CompanySelectorOther {
		return nil, fmt.Errorf("%w: name %q is reserved", ErrInvalidInput, name)
	}

	if !s.catalog.HasTier(domain.Tier(req.Tier)) {
		s.logger.Warn("Add: unknown tier %s for company %q", req.Tier, name)
		return nil, ErrInvalidTier
	}

	s.logger.Info("Add: adding company %q with tier %s", name, req.Tier)

	created, err := s.companyRepo.Create(ctx, &domain.Company{
		Name: name,
		Tier: req.Tier,
	})
	if err != nil {
		if errors.Is(err, companyRepo.ErrDuplicateName) {
			s.logger.Warn("Add: company %q already exists", name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Add: repository error for company %q: %v", name, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: added company id=%d %q", created.ID, created.Name)
	return models.FromDomainCompany(created), nil
}

// Remove удаляет компанию из реестра
// Компания с бронированиями не удаляется: история должна остаться читаемой.
// Проверка числа бронирований и удаление выполняются в одной
// serializable-транзакции, чтобы конкурирующая заявка не проскочила между ними.
func (s *Service) Remove(ctx context.Context, id int64) error {
	s.logger.Info("Remove: removing company id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		company, err := s.companyRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, companyRepo.ErrCompanyNotFound) {
				s.logger.Warn("Remove: company id=%d not found", id)
				return ErrCompanyNotFound
			}
			s.logger.Error("Remove: repository error for company id=%d: %v", id, err)
			return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
		}

		count, err := s.bookingRepo.CountByCompany(txCtx, company.Name)
		if err != nil {
			s.logger.Error("Remove: failed to count bookings for %q: %v", company.Name, err)
			return fmt.Errorf("%w: Remove - failed to count bookings: %v", ErrInternal, err)
		}

		if count > 0 {
			s.logger.Warn("Remove: company %q has %d bookings, refusing to remove", company.Name, count)
			return &HasBookingsError{Company: company.Name, Count: count}
		}

		if err := s.companyRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, companyRepo.ErrCompanyNotFound) {
				return ErrCompanyNotFound
			}
			s.logger.Error("Remove: repository error for company id=%d: %v", id, err)
			return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("Remove: removed company id=%d", id)
	return nil
}
