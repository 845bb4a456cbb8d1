package disable_slot

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
	createFn func(ctx context.Context, slot *domain.DisabledSlot) (*domain.DisabledSlot, error)
	listFn   func(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error)
}

func (m *mockDisabledRepo) Create(ctx context.Context, slot *domain.DisabledSlot) (*domain.DisabledSlot, error) {
	return m.createFn(ctx, slot)
}

func (m *mockDisabledRepo) ListByDate(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error) {
	return m.listFn(ctx, date, roomCode)
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()

	catalog, err := domain.NewCatalog(domain.CatalogConfig{
		EventDates:      []string{"2025-10-29", "2025-10-30"},
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

func newFixture(t *testing.T) (*UseCase, *mockBookingRepo, *mockDisabledRepo) {
	t.Helper()

	bookings := &mockBookingRepo{
		listFn: func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
			return nil, nil
		},
	}

	disabled := &mockDisabledRepo{
		createFn: func(ctx context.Context, slot *domain.DisabledSlot) (*domain.DisabledSlot, error) {
			slot.ID = 1
			return slot, nil
		},
		listFn: func(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error) {
			return nil, nil
		},
	}

	uc := NewUseCase(testCatalog(t), bookings, disabled, &fakeTxManager{}, nopLogger{})

	return uc, bookings, disabled
}

func validRequest() *Request {
	return &Request{
		Date:      "2025-10-29",
		RoomCode:  "DM1",
		StartHour: 14,
		Blocks:    2,
	}
}

func TestDisableSlot_Success(t *testing.T) {
	uc, _, _ := newFixture(t)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "DM1", resp.RoomCode)
	assert.Equal(t, 14, resp.StartHour)
	assert.Equal(t, 16, resp.EndHour)
	assert.Nil(t, resp.Note)
}

func TestDisableSlot_NoteNormalized(t *testing.T) {
	uc, _, disabled := newFixture(t)

	var saved *domain.DisabledSlot
	disabled.createFn = func(ctx context.Context, slot *domain.DisabledSlot) (*domain.DisabledSlot, error) {
		slot.ID = 2
		saved = slot
		return slot, nil
	}

	req := validRequest()
	req.Note = ptr.Ptr("  VIP reception  ")

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.NotNil(t, saved.Note)
	assert.Equal(t, "VIP reception", *saved.Note)

	// Пустая заметка превращается в отсутствие заметки
	req = validRequest()
	req.Note = ptr.Ptr("   ")

	_, err = uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Nil(t, saved.Note)
}

func TestDisableSlot_InvalidInput(t *testing.T) {
	uc, _, _ := newFixture(t)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty date", func(r *Request) { r.Date = "  " }},
		{"empty room", func(r *Request) { r.RoomCode = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDisableSlot_InvalidDate(t *testing.T) {
	uc, _, _ := newFixture(t)

	req := validRequest()
	req.Date = "2025-11-05"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDisableSlot_UnknownRoom(t *testing.T) {
	uc, _, _ := newFixture(t)

	req := validRequest()
	req.RoomCode = "XX9"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestDisableSlot_InvalidHours(t *testing.T) {
	uc, _, _ := newFixture(t)

	req := validRequest()
	req.StartHour = 8
	req.Blocks = 1

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidHours)

	// Двухблоковый интервал с последнего часа вылезает за закрытие
	req = validRequest()
	req.StartHour = 17
	req.Blocks = 2

	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidHours)
}

func TestDisableSlot_BlocksClamped(t *testing.T) {
	uc, _, disabled := newFixture(t)

	var saved *domain.DisabledSlot
	disabled.createFn = func(ctx context.Context, slot *domain.DisabledSlot) (*domain.DisabledSlot, error) {
		slot.ID = 4
		saved = slot
		return slot, nil
	}

	req := validRequest()
	req.Blocks = 5 // выше лимита, молча обрезается до 2

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 16, saved.EndHour)

	req = validRequest()
	req.Blocks = 0 // ниже минимума, поднимается до 1

	_, err = uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 15, saved.EndHour)
}

func TestDisableSlot_BookingExists(t *testing.T) {
	uc, bookings, _ := newFixture(t)
	bookings.listFn = func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
		return []*domain.Booking{
			{ID: 5, RoomCode: "DM1", StartHour: 15, EndHour: 17},
		}, nil
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingExists)
}

func TestDisableSlot_AlreadyDisabled(t *testing.T) {
	uc, _, disabled := newFixture(t)
	disabled.listFn = func(ctx context.Context, date string, roomCode *string) ([]*domain.DisabledSlot, error) {
		return []*domain.DisabledSlot{
			{ID: 3, RoomCode: "DM1", StartHour: 13, EndHour: 15},
		}, nil
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAlreadyDisabled)
}

func TestDisableSlot_TouchingIntervalAllowed(t *testing.T) {
	uc, bookings, _ := newFixture(t)
	bookings.listFn = func(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
		return []*domain.Booking{
			{ID: 5, RoomCode: "DM1", StartHour: 16, EndHour: 17},
		}, nil
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}
