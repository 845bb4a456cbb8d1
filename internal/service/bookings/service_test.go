package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
	bookingRepo "github.com/dkomnin/APEC-BookingService/internal/infra/storage/booking"
	"github.com/dkomnin/APEC-BookingService/internal/service/bookings/models"
	"github.com/dkomnin/APEC-BookingService/pkg/ptr"
)

type mockBookingRepo struct {
	getByIDFn   func(ctx context.Context, id int64) (*domain.Booking, error)
	listFn      func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	sumBlocksFn func(ctx context.Context, date, company string) (int, error)
	deleteFn    func(ctx context.Context, id int64) error
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockBookingRepo) ListByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.listFn(ctx, filter)
}

func (m *mockBookingRepo) SumBlocksByCompany(ctx context.Context, date, company string) (int, error) {
	return m.sumBlocksFn(ctx, date, company)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()

	catalog, err := domain.NewCatalog(domain.CatalogConfig{
		EventDates:      []string{"2025-10-29"},
		OpenHour:        9,
		CloseHour:       18,
		MaxBlocks:       2,
		CatchallTier:    "General",
		GeneralRoomCode: "NM1",
		TierOrder:       []domain.Tier{"Diamond", "General"},
		TierLabels: map[domain.Tier]string{
			"Diamond": "Diamond Sponsor",
			"General": "General",
		},
		Rooms: []domain.Room{
			{Code: "DM1", Tier: "Diamond", Name: "Diamond Meeting Room 1", Order: 1},
			{Code: "NM1", Tier: "General", Name: "General Meeting Room", Order: 1},
		},
	})
	require.NoError(t, err)

	return catalog
}

func newFixture(t *testing.T) (*Service, *mockBookingRepo) {
	t.Helper()

	repo := &mockBookingRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Booking, error) {
			return &domain.Booking{ID: id, Date: "2025-10-29", RoomCode: "DM1",
				Tier: "Diamond", Company: "Hyundai Motor Group",
				Email: "alice@hyundai.com", StartHour: 10, EndHour: 11, Blocks: 1}, nil
		},
		listFn: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
		sumBlocksFn: func(ctx context.Context, date, company string) (int, error) {
			return 0, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			return nil
		},
	}

	return NewService(testCatalog(t), repo, nopLogger{}), repo
}

func TestGetByID_Success(t *testing.T) {
	svc, _ := newFixture(t)

	resp, err := svc.GetByID(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, "DM1", resp.RoomCode)
	assert.Equal(t, "Hyundai Motor Group", resp.Company)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, repo := newFixture(t)
	repo.getByIDFn = func(ctx context.Context, id int64) (*domain.Booking, error) {
		return nil, bookingRepo.ErrBookingNotFound
	}

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_Success(t *testing.T) {
	svc, repo := newFixture(t)

	var gotFilter domain.BookingsFilter
	repo.listFn = func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
		gotFilter = filter
		return []*domain.Booking{
			{ID: 1, Date: "2025-10-29", RoomCode: "DM1", Company: "Hyundai Motor Group"},
		}, nil
	}

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Date:     "2025-10-29",
		RoomCode: ptr.Ptr("DM1"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "2025-10-29", gotFilter.Date)
	require.NotNil(t, gotFilter.RoomCode)
	assert.Equal(t, "DM1", *gotFilter.RoomCode)
}

func TestList_InvalidDate(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Date: "2025-12-01"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestList_UnknownRoom(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Date:     "2025-10-29",
		RoomCode: ptr.Ptr("XX9"),
	})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDailyUsage(t *testing.T) {
	svc, repo := newFixture(t)
	repo.sumBlocksFn = func(ctx context.Context, date, company string) (int, error) {
		return 1, nil
	}

	resp, err := svc.DailyUsage(context.Background(), &models.DailyUsageRequest{
		Date:    "2025-10-29",
		Company: "  Hyundai Motor Group  ",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hyundai Motor Group", resp.Company)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, 2, resp.Limit)
}

func TestDailyUsage_CompanyRequired(t *testing.T) {
	svc, _ := newFixture(t)

	_, err := svc.DailyUsage(context.Background(), &models.DailyUsageRequest{
		Date:    "2025-10-29",
		Company: "   ",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_NotFound(t *testing.T) {
	svc, repo := newFixture(t)
	repo.deleteFn = func(ctx context.Context, id int64) error {
		return bookingRepo.ErrBookingNotFound
	}

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
