package get_availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
	"github.com/dkomnin/APEC-BookingService/pkg/ptr"
)

type mockBookingRepo struct {
	listFn func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

func (m *mockBookingRepo) ListByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.listFn(ctx, filter)
}

type mockDisabledRepo struct {
	listFn func(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error)
}

func (m *mockDisabledRepo) ListByDate(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error) {
	return m.listFn(ctx, date, roomCode)
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

func TestGetAvailability_MergesBookingsAndDisabled(t *testing.T) {
	bookings := &mockBookingRepo{
		listFn: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			return []*domain.Booking{
				{ID: 1, RoomCode: "DM1", StartHour: 14, EndHour: 16, Company: "Hyundai Motor Group", Tier: "Diamond"},
				{ID: 2, RoomCode: "DM1", StartHour: 9, EndHour: 10, Company: "Samsung Electronics", Tier: "Diamond"},
			}, nil
		},
	}

	disabled := &mockDisabledRepo{
		listFn: func(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error) {
			return []*domain.DisabledSlot{
				{ID: 3, RoomCode: "DM1", StartHour: 11, EndHour: 13, Note: ptr.Ptr("maintenance")},
			}, nil
		},
	}

	uc := NewUseCase(testCatalog(t), bookings, disabled, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-29", RoomCode: "DM1"})

	require.NoError(t, err)
	assert.Equal(t, "2025-10-29", resp.Date)
	assert.Equal(t, "DM1", resp.RoomCode)
	assert.Equal(t, "DM1 · Diamond Meeting Room 1", resp.RoomLabel)
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16, 17}, resp.Hours)

	// Интервалы отсортированы по началу независимо от источника
	assert.Equal(t, [][2]int{{9, 10}, {11, 13}, {14, 16}}, resp.Taken)

	require.Len(t, resp.Items, 3)
	assert.Equal(t, KindBooking, resp.Items[0].Kind)
	assert.Equal(t, "Samsung Electronics", resp.Items[0].Company)
	assert.Equal(t, KindDisabled, resp.Items[1].Kind)
	require.NotNil(t, resp.Items[1].Note)
	assert.Equal(t, "maintenance", *resp.Items[1].Note)
	assert.Equal(t, KindBooking, resp.Items[2].Kind)
	assert.Equal(t, "Hyundai Motor Group", resp.Items[2].Company)
}

func TestGetAvailability_EmptyRoom(t *testing.T) {
	bookings := &mockBookingRepo{
		listFn: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
	}
	disabled := &mockDisabledRepo{
		listFn: func(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error) {
			return nil, nil
		},
	}

	uc := NewUseCase(testCatalog(t), bookings, disabled, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-10-29", RoomCode: "NM1"})

	require.NoError(t, err)
	assert.Empty(t, resp.Taken)
	assert.Empty(t, resp.Items)
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	uc := NewUseCase(testCatalog(t), &mockBookingRepo{}, &mockDisabledRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-12-01", RoomCode: "DM1"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestGetAvailability_UnknownRoom(t *testing.T) {
	uc := NewUseCase(testCatalog(t), &mockBookingRepo{}, &mockDisabledRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-10-29", RoomCode: "XX9"})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
