package admit_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
	companyRepo "github.com/dkomnin/APEC-BookingService/internal/infra/storage/company"
	"github.com/dkomnin/APEC-BookingService/pkg/ptr"
)

// --- Mocks ---

type mockBookingRepo struct {
	createFn    func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	listFn      func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	sumBlocksFn func(ctx context.Context, date, company string) (int, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	return m.createFn(ctx, booking)
}

func (m *mockBookingRepo) ListByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.listFn(ctx, filter)
}

func (m *mockBookingRepo) SumBlocksByCompany(ctx context.Context, date, company string) (int, error) {
	return m.sumBlocksFn(ctx, date, company)
}

type mockDisabledRepo struct {
	listFn func(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error)
}

func (m *mockDisabledRepo) ListByDate(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error) {
	return m.listFn(ctx, date, roomCode)
}

type mockCompanyRepo struct {
	getByNameFn func(ctx context.Context, name string) (*domain.Company, error)
}

func (m *mockCompanyRepo) GetByName(ctx context.Context, name string) (*domain.Company, error) {
	return m.getByNameFn(ctx, name)
}

// fakeTxManager выполняет функцию без транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Fixtures ---

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()

	catalog, err := domain.NewCatalog(domain.CatalogConfig{
		EventDates:      []string{"2025-10-29", "2025-10-30", "2025-10-31"},
		OpenHour:        9,
		CloseHour:       18,
		MaxBlocks:       2,
		CatchallTier:    "General",
		GeneralRoomCode: "NM1",
		TierOrder:       []domain.Tier{"Diamond", "Platinum", "Gold", "General"},
		TierLabels: map[domain.Tier]string{
			"Diamond":  "Diamond Sponsor",
			"Platinum": "Platinum Sponsor",
			"Gold":     "Gold Sponsor",
			"General":  "General",
		},
		Rooms: []domain.Room{
			{Code: "DM1", Tier: "Diamond", Name: "Diamond Meeting Room 1", Order: 1},
			{Code: "PM1", Tier: "Platinum", Name: "Platinum Meeting Room 1", Order: 1},
			{Code: "GM1", Tier: "Gold", Name: "Gold Meeting Room 1", Order: 1},
			{Code: "NM1", Tier: "General", Name: "General Meeting Room", Order: 1},
		},
	})
	require.NoError(t, err)

	return catalog
}

// newFixture собирает use case на пустых репозиториях: реестр знает только
// Hyundai Motor Group (Diamond), бронирований и блокировок нет.
// Поля моков можно переопределять после сборки.
func newFixture(t *testing.T) (*UseCase, *mockBookingRepo, *mockDisabledRepo, *mockCompanyRepo) {
	t.Helper()

	bookings := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
			booking.ID = 1
			return booking, nil
		},
		listFn: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
		sumBlocksFn: func(ctx context.Context, date, company string) (int, error) {
			return 0, nil
		},
	}

	disabled := &mockDisabledRepo{
		listFn: func(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error) {
			return nil, nil
		},
	}

	companies := &mockCompanyRepo{
		getByNameFn: func(ctx context.Context, name string) (*domain.Company, error) {
			if name == "Hyundai Motor Group" {
				return &domain.Company{ID: 1, Name: "Hyundai Motor Group", Tier: "Diamond"}, nil
			}
			return nil, companyRepo.ErrCompanyNotFound
		},
	}

	uc := NewUseCase(testCatalog(t), bookings, disabled, companies, &fakeTxManager{}, nopLogger{})

	return uc, bookings, disabled, companies
}

func validRequest() *Request {
	return &Request{
		Date:      "2025-10-29",
		RoomCode:  "DM1",
		StartHour: 10,
		Blocks:    1,
		Company:   "Hyundai Motor Group",
		Email:     "booker@hyundai.com",
	}
}

// --- Tests ---

func TestAdmitBooking_Success(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Diamond", resp.Tier)
	assert.Equal(t, "Hyundai Motor Group", resp.Company)
	assert.Equal(t, 10, resp.StartHour)
	assert.Equal(t, 11, resp.EndHour)
	assert.Equal(t, 1, resp.Blocks)
	assert.Equal(t, "DM1 · Diamond Meeting Room 1", resp.RoomLabel)
}

func TestAdmitBooking_TierResolvedFromRoster(t *testing.T) {
	uc, bookings, _, _ := newFixture(t)

	var saved *domain.Booking
	bookings.createFn = func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
		booking.ID = 7
		saved = booking
		return booking, nil
	}

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	// Уровень фиксируется из реестра, что бы ни прислал клиент
	assert.Equal(t, "Diamond", saved.Tier)
}

func TestAdmitBooking_InvalidDate(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	req := validRequest()
	req.Date = "2025-11-01"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestAdmitBooking_UnknownRoom(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	req := validRequest()
	req.RoomCode = "XX9"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestAdmitBooking_UnknownCompany(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	req := validRequest()
	req.Company = "No Such Company"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestAdmitBooking_RoomNotAllowedForTier(t *testing.T) {
	uc, _, _, companies := newFixture(t)
	companies.getByNameFn = func(ctx context.Context, name string) (*domain.Company, error) {
		return &domain.Company{ID: 5, Name: name, Tier: "Gold"}, nil
	}

	req := validRequest()
	req.Company = "POSCO Holdings"
	req.RoomCode = "DM1" // Diamond комната для Gold компании

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotAllowed)
}

func TestAdmitBooking_OtherCompany(t *testing.T) {
	uc, bookings, _, _ := newFixture(t)

	var saved *domain.Booking
	bookings.createFn = func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
		booking.ID = 3
		saved = booking
		return booking, nil
	}

	req := validRequest()
	req.Company = "Other"
	req.OtherName = ptr.Ptr("  Small Startup  ")
	req.RoomCode = "NM1"

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "Small Startup", saved.Company)
	assert.Equal(t, "General", saved.Tier)
}

func TestAdmitBooking_OtherRequiresName(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	req := validRequest()
	req.Company = "Other"
	req.OtherName = ptr.Ptr("   ")
	req.RoomCode = "NM1"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAdmitBooking_OtherMustUseGeneralRoom(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	req := validRequest()
	req.Company = "Other"
	req.OtherName = ptr.Ptr("Small Startup")
	req.RoomCode = "DM1"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotAllowed)
}

func TestAdmitBooking_BlocksClamped(t *testing.T) {
	uc, bookings, _, _ := newFixture(t)

	var saved *domain.Booking
	bookings.createFn = func(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
		booking.ID = 4
		saved = booking
		return booking, nil
	}

	req := validRequest()
	req.Blocks = 5 // выше лимита, молча обрезается до 2

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 2, saved.Blocks)
	assert.Equal(t, 12, saved.EndHour)

	req = validRequest()
	req.Blocks = 0 // ниже минимума, поднимается до 1

	_, err = uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, saved.Blocks)
}

func TestAdmitBooking_InvalidHours(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	req := validRequest()
	req.StartHour = 8

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidHours)

	// Двухблоковый интервал с последнего часа вылезает за закрытие
	req = validRequest()
	req.StartHour = 17
	req.Blocks = 2

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestAdmitBooking_DailyLimitExceeded(t *testing.T) {
	uc, bookings, _, _ := newFixture(t)
	bookings.sumBlocksFn = func(ctx context.Context, date, company string) (int, error) {
		return 2, nil
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDailyLimitExceeded)

	var limitErr *DailyLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 2, limitErr.CurrentTotal)
	assert.Equal(t, 2, limitErr.Cap)
	assert.Equal(t, "Hyundai Motor Group", limitErr.Company)
}

func TestAdmitBooking_DailyLimitCountsAllRooms(t *testing.T) {
	uc, bookings, _, _ := newFixture(t)
	// Один блок уже занят в другой комнате: второй двухблоковый не влезает
	bookings.sumBlocksFn = func(ctx context.Context, date, company string) (int, error) {
		return 1, nil
	}

	req := validRequest()
	req.Blocks = 2

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDailyLimitExceeded)

	// Один блок ещё помещается
	req = validRequest()
	req.Blocks = 1
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestAdmitBooking_SlotTaken(t *testing.T) {
	uc, bookings, _, _ := newFixture(t)
	bookings.listFn = func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
		return []*domain.Booking{
			{ID: 9, RoomCode: "DM1", StartHour: 10, EndHour: 12},
		}, nil
	}

	req := validRequest()
	req.StartHour = 11

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestAdmitBooking_TouchingIntervalsAllowed(t *testing.T) {
	uc, bookings, _, _ := newFixture(t)
	bookings.listFn = func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
		return []*domain.Booking{
			{ID: 9, RoomCode: "DM1", StartHour: 10, EndHour: 12},
		}, nil
	}

	// Интервал впритык к существующему не конфликтует
	req := validRequest()
	req.StartHour = 12

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestAdmitBooking_SlotDisabled(t *testing.T) {
	uc, _, disabled, _ := newFixture(t)
	disabled.listFn = func(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error) {
		return []*domain.DisabledSlot{
			{ID: 2, RoomCode: "DM1", StartHour: 10, EndHour: 11},
		}, nil
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotDisabled)
}

func TestAdmitBooking_EmailRequired(t *testing.T) {
	uc, _, _, _ := newFixture(t)

	req := validRequest()
	req.Email = "   "

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Email = "not-an-email"

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
