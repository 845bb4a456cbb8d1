package admit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
	companyRepo "github.com/dkomnin/APEC-BookingService/internal/infra/storage/company"
	"github.com/dkomnin/APEC-BookingService/pkg/ptr"
)

// UseCase use case допуска бронирования
// Прогоняет заявку через упорядоченную цепочку проверок: дата события,
// комната, определение компании и уровня, доступ уровня к комнате,
// рабочие часы, дневной лимит, пересечения. Проверки, зависящие от
// текущего состояния БД, и вставка выполняются в одной serializable-транзакции.
type UseCase struct {
	catalog      *domain.Catalog
	bookingRepo  BookingRepository
	disabledRepo DisabledSlotRepository
	companyRepo  CompanyRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog *domain.Catalog,
	bookingRepo BookingRepository,
	disabledRepo DisabledSlotRepository,
	companyRepo CompanyRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:      catalog,
		bookingRepo:  bookingRepo,
		disabledRepo: disabledRepo,
		companyRepo:  companyRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет допуск бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AdmitBooking: date=%s, room=%s, start=%d, blocks=%d, company=%q",
		req.Date, req.RoomCode, req.StartHour, req.Blocks, req.Company)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AdmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата должна входить в даты события
	if !uc.catalog.IsEventDate(req.Date) {
		uc.logger.Warn("AdmitBooking: date %s is not an event date", req.Date)
		return nil, ErrInvalidDate
	}

	// 3. Комната должна существовать в каталоге
	room, ok := uc.catalog.Room(req.RoomCode)
	if !ok {
		uc.logger.Warn("AdmitBooking: unknown room %s", req.RoomCode)
		return nil, ErrRoomNotFound
	}

	// 4. Определяем компанию и уровень спонсорства.
	// Клиентский tier игнорируется: уровень всегда берётся из реестра
	// либо выставляется catchall для свободного ввода.
	companyName, tier, err := uc.resolveCompany(ctx, req)
	if err != nil {
		return nil, err
	}

	// 5. Уровень должен давать доступ к комнате
	if !uc.catalog.RoomAllowedForTier(tier, room.Code) {
		uc.logger.Warn("AdmitBooking: room %s not allowed for tier %s (company %q)",
			room.Code, tier, companyName)
		return nil, ErrRoomNotAllowed
	}

	// 6. Длительность обрезается до лимита, интервал должен укладываться в рабочие часы
	blocks := clampBlocks(req.Blocks, uc.catalog.MaxBlocks())
	endHour := req.StartHour + blocks
	if !uc.catalog.ValidStartHour(req.StartHour, endHour) {
		uc.logger.Warn("AdmitBooking: invalid hours start=%d end=%d", req.StartHour, endHour)
		return nil, ErrInvalidHours
	}

	requested := domain.HourRange{Start: req.StartHour, End: endHour}

	var result *domain.Booking

	// 7-9. Лимит, пересечения и вставка в одной serializable-транзакции:
	// конкурирующие заявки не могут одновременно пройти проверки на одном снимке
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7. Дневной лимит компании: сумма по всем комнатам за дату
		currentTotal, err := uc.bookingRepo.SumBlocksByCompany(txCtx, req.Date, companyName)
		if err != nil {
			uc.logger.Error("AdmitBooking: failed to sum daily blocks: %v", err)
			return fmt.Errorf("%w: failed to sum daily blocks: %v", ErrInternal, err)
		}

		if currentTotal+blocks > uc.catalog.MaxBlocks() {
			uc.logger.Warn("AdmitBooking: daily limit exceeded for %q on %s: %d+%d > %d",
				companyName, req.Date, currentTotal, blocks, uc.catalog.MaxBlocks())
			return &DailyLimitError{
				Company:      companyName,
				Date:         req.Date,
				CurrentTotal: currentTotal,
				Requested:    blocks,
				Cap:          uc.catalog.MaxBlocks(),
			}
		}

		// 8a. Пересечение с существующими бронированиями комнаты
		bookings, err := uc.bookingRepo.ListByFilter(txCtx, domain.BookingsFilter{
			Date:     req.Date,
			RoomCode: ptr.Ptr(room.Code),
		})
		if err != nil {
			uc.logger.Error("AdmitBooking: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		if conflict := findOverlap(requested, bookings); conflict != nil {
			uc.logger.Warn("AdmitBooking: slot taken in %s on %s: %d-%d overlaps booking id=%d",
				room.Code, req.Date, requested.Start, requested.End, conflict.ID)
			return ErrSlotTaken
		}

		// 8b. Пересечение с административными блокировками комнаты
		disabled, err := uc.disabledRepo.ListByDate(txCtx, req.Date, ptr.Ptr(room.Code))
		if err != nil {
			uc.logger.Error("AdmitBooking: failed to list disabled slots: %v", err)
			return fmt.Errorf("%w: failed to list disabled slots: %v", ErrInternal, err)
		}

		if blocked := findDisabledOverlap(requested, disabled); blocked != nil {
			uc.logger.Warn("AdmitBooking: slot disabled in %s on %s: %d-%d overlaps disabled id=%d",
				room.Code, req.Date, requested.Start, requested.End, blocked.ID)
			return ErrSlotDisabled
		}

		// 9. Вставка. Уровень и имя компании фиксируются в строке бронирования:
		// последующие изменения реестра не меняют историю
		booking := &domain.Booking{
			Date:      req.Date,
			RoomCode:  room.Code,
			Tier:      string(tier),
			Company:   companyName,
			Email:     strings.TrimSpace(req.Email),
			StartHour: requested.Start,
			EndHour:   requested.End,
			Blocks:    blocks,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("AdmitBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("AdmitBooking: admitted booking id=%d for %q in %s on %s %d-%d",
		result.ID, result.Company, result.RoomCode, result.Date, result.StartHour, result.EndHour)

	return &Response{
		ID:        result.ID,
		Date:      result.Date,
		RoomCode:  result.RoomCode,
		RoomLabel: uc.catalog.LabelOf(result.RoomCode),
		Tier:      result.Tier,
		TierLabel: uc.catalog.TierLabel(domain.Tier(result.Tier)),
		Company:   result.Company,
		Email:     result.Email,
		StartHour: result.StartHour,
		EndHour:   result.EndHour,
		Blocks:    result.Blocks,
		CreatedAt: result.CreatedAt,
	}, nil
}

// resolveCompany определяет сохраняемое имя компании и её уровень
// Селектор "Other": произвольное имя, catchall-уровень, только выделенная
// общая комната. Иначе компания ищется в реестре по точному имени.
func (uc *UseCase) resolveCompany(ctx context.Context, req *Request) (string, domain.Tier, error) {
	if req.Company == domain.CompanySelectorOther {
		name, err := resolveOtherCompany(req.OtherName)
		if err != nil {
			uc.logger.Warn("AdmitBooking: %v", err)
			return "", "", err
		}

		tier := uc.catalog.CatchallTier()
		if general := uc.catalog.GeneralRoomCode(); general != "" && req.RoomCode != general {
			uc.logger.Warn("AdmitBooking: Other company %q must use general room %s, got %s",
				name, general, req.RoomCode)
			return "", "", ErrRoomNotAllowed
		}

		return name, tier, nil
	}

	name := strings.TrimSpace(req.Company)

	company, err := uc.companyRepo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, companyRepo.ErrCompanyNotFound) {
			uc.logger.Warn("AdmitBooking: company %q not found in roster", name)
			return "", "", ErrCompanyNotFound
		}
		uc.logger.Error("AdmitBooking: failed to get company %q: %v", name, err)
		return "", "", fmt.Errorf("%w: failed to get company: %v", ErrInternal, err)
	}

	return company.Name, domain.Tier(company.Tier), nil
}
