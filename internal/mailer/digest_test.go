package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

func TestBuildDigests_Empty(t *testing.T) {
	assert.Nil(t, BuildDigests("2025-10-29", nil))
	assert.Nil(t, BuildDigests("2025-10-29", []*domain.Booking{}))
}

func TestBuildDigests_GroupsByEmail(t *testing.T) {
	bookings := []*domain.Booking{
		{Date: "2025-10-29", RoomCode: "DM1", Tier: "Diamond", Company: "Hyundai Motor Group",
			Email: "alice@hyundai.com", StartHour: 9, EndHour: 11},
		{Date: "2025-10-29", RoomCode: "NM1", Tier: "General", Company: "Hyundai Motor Group",
			Email: "alice@hyundai.com", StartHour: 14, EndHour: 15},
		{Date: "2025-10-29", RoomCode: "PM1", Tier: "Platinum", Company: "SK Group",
			Email: "bob@sk.com", StartHour: 10, EndHour: 11},
	}

	digests := BuildDigests("2025-10-29", bookings)

	require.Len(t, digests, 2)

	// Порядок получателей следует порядку бронирований
	assert.Equal(t, "alice@hyundai.com", digests[0].Email)
	assert.Equal(t, "bob@sk.com", digests[1].Email)

	assert.Equal(t, "Your meeting room bookings for 2025-10-29", digests[0].Subject)
}

func TestBuildDigests_Body(t *testing.T) {
	bookings := []*domain.Booking{
		{Date: "2025-10-29", RoomCode: "DM1", Tier: "Diamond", Company: "Hyundai Motor Group",
			Email: "alice@hyundai.com", StartHour: 9, EndHour: 11},
	}

	digests := BuildDigests("2025-10-29", bookings)
	require.Len(t, digests, 1)

	want := "Hello,\n" +
		"\n" +
		"Here is your booking summary:\n" +
		"\n" +
		"- 2025-10-29 09:00–11:00 DM1 (Diamond) – Hyundai Motor Group\n" +
		"\n" +
		"Thank you."
	assert.Equal(t, want, digests[0].Body)
}
