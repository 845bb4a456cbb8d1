package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	admitBooking "github.com/dkomnin/APEC-BookingService/internal/usecase/admit_booking"
)

type mockUseCase struct {
	executeFn func(ctx context.Context, req *admitBooking.Request) (*admitBooking.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *admitBooking.Request) (*admitBooking.Response, error) {
	return m.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// Клиент присылает tier вместе с заявкой (форма показывает уровень компании),
// но сервер его не читает: уровень всегда определяется по реестру
func TestHandle_ClaimedTierIgnored(t *testing.T) {
	var received *admitBooking.Request
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *admitBooking.Request) (*admitBooking.Response, error) {
			received = req
			return &admitBooking.Response{
				ID:        1,
				Date:      req.Date,
				RoomCode:  req.RoomCode,
				RoomLabel: "GM1 · Gold Meeting Room 1",
				Tier:      "Gold",
				TierLabel: "Gold Sponsor",
				Company:   req.Company,
				Email:     req.Email,
				StartHour: req.StartHour,
				EndHour:   req.StartHour + req.Blocks,
				Blocks:    req.Blocks,
			}, nil
		},
	}

	h := NewHandler(uc, nopLogger{})

	body := `{"date":"2025-10-29","room":"GM1","startHour":10,"blocks":1,` +
		`"company":"POSCO Holdings","tier":"Diamond","email":"booker@posco.com"}`

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	w := httptest.NewRecorder()

	h.Handle(w, r)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, received)
	assert.Equal(t, "POSCO Holdings", received.Company)
	assert.Equal(t, "GM1", received.RoomCode)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// Присланный "Diamond" никуда не попал: зафиксирован уровень из реестра
	assert.Equal(t, "Gold", resp.Tier)
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *admitBooking.Request) (*admitBooking.Response, error) {
			t.Fatal("use case must not be called on a malformed body")
			return nil, nil
		},
	}

	h := NewHandler(uc, nopLogger{})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"date":`))
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
