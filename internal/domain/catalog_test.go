package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalogConfig() CatalogConfig {
	return CatalogConfig{
		EventDates:      []string{"2025-10-29", "2025-10-30", "2025-10-31"},
		OpenHour:        9,
		CloseHour:       18,
		MaxBlocks:       2,
		CatchallTier:    "General",
		GeneralRoomCode: "NM1",
		TierOrder:       []Tier{"Diamond", "Platinum", "Gold", "General"},
		TierLabels: map[Tier]string{
			"Diamond":  "Diamond Sponsor",
			"Platinum": "Platinum Sponsor",
			"Gold":     "Gold Sponsor",
			"General":  "General",
		},
		Rooms: []Room{
			{Code: "DM1", Tier: "Diamond", Name: "Diamond Meeting Room 1", Order: 1},
			{Code: "DM2", Tier: "Diamond", Name: "Diamond Meeting Room 2", Order: 2},
			{Code: "PM1", Tier: "Platinum", Name: "Platinum Meeting Room 1", Order: 1},
			{Code: "GM1", Tier: "Gold", Name: "Gold Meeting Room 1", Order: 1},
			{Code: "NM1", Tier: "General", Name: "General Meeting Room", Order: 1},
		},
	}
}

func TestNewCatalog_Valid(t *testing.T) {
	catalog, err := NewCatalog(testCatalogConfig())
	require.NoError(t, err)

	assert.True(t, catalog.IsEventDate("2025-10-29"))
	assert.False(t, catalog.IsEventDate("2025-11-01"))
	assert.Equal(t, []string{"2025-10-29", "2025-10-30", "2025-10-31"}, catalog.EventDates())
	assert.Equal(t, 2, catalog.MaxBlocks())
	assert.Equal(t, Tier("General"), catalog.CatchallTier())
	assert.Equal(t, "NM1", catalog.GeneralRoomCode())
}

func TestNewCatalog_ConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CatalogConfig)
	}{
		{"no event dates", func(c *CatalogConfig) { c.EventDates = nil }},
		{"bad date format", func(c *CatalogConfig) { c.EventDates = []string{"29.10.2025"} }},
		{"duplicate date", func(c *CatalogConfig) { c.EventDates = []string{"2025-10-29", "2025-10-29"} }},
		{"inverted hours", func(c *CatalogConfig) { c.OpenHour = 18; c.CloseHour = 9 }},
		{"zero max blocks", func(c *CatalogConfig) { c.MaxBlocks = 0 }},
		{"unknown catchall tier", func(c *CatalogConfig) { c.CatchallTier = "Silver" }},
		{"room with unknown tier", func(c *CatalogConfig) {
			c.Rooms = append(c.Rooms, Room{Code: "SM1", Tier: "Silver", Name: "Silver Room"})
		}},
		{"duplicate room code", func(c *CatalogConfig) {
			c.Rooms = append(c.Rooms, Room{Code: "DM1", Tier: "Diamond", Name: "Duplicate"})
		}},
		{"general room not in catalog", func(c *CatalogConfig) { c.GeneralRoomCode = "XX9" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testCatalogConfig()
			tt.mutate(&cfg)

			_, err := NewCatalog(cfg)
			assert.Error(t, err)
		})
	}
}

func TestCatalog_RoomAllowedForTier(t *testing.T) {
	catalog, err := NewCatalog(testCatalogConfig())
	require.NoError(t, err)

	assert.True(t, catalog.RoomAllowedForTier("Diamond", "DM1"))
	assert.True(t, catalog.RoomAllowedForTier("Diamond", "DM2"))
	assert.False(t, catalog.RoomAllowedForTier("Diamond", "PM1"))
	assert.False(t, catalog.RoomAllowedForTier("Gold", "DM1"))
	assert.True(t, catalog.RoomAllowedForTier("General", "NM1"))
	assert.False(t, catalog.RoomAllowedForTier("General", "GM1"))
}

func TestCatalog_RoomAllowedForTier_EmptyTier(t *testing.T) {
	cfg := testCatalogConfig()
	// Тир без комнат: решает явный флаг, а не пустота списка
	cfg.TierOrder = append(cfg.TierOrder, "Partner")
	cfg.TierLabels["Partner"] = "Partner"

	catalog, err := NewCatalog(cfg)
	require.NoError(t, err)
	assert.False(t, catalog.RoomAllowedForTier("Partner", "DM1"))

	cfg.EmptyTierAllowsAnyRoom = true
	catalog, err = NewCatalog(cfg)
	require.NoError(t, err)
	assert.True(t, catalog.RoomAllowedForTier("Partner", "DM1"))
}

func TestCatalog_Hours(t *testing.T) {
	catalog, err := NewCatalog(testCatalogConfig())
	require.NoError(t, err)

	hours := catalog.Hours()
	assert.Equal(t, []int{9, 10, 11, 12, 13, 14, 15, 16, 17}, hours)
}

func TestCatalog_ValidStartHour(t *testing.T) {
	catalog, err := NewCatalog(testCatalogConfig())
	require.NoError(t, err)

	assert.True(t, catalog.ValidStartHour(9, 10))
	assert.True(t, catalog.ValidStartHour(17, 18))
	assert.True(t, catalog.ValidStartHour(16, 18))
	assert.False(t, catalog.ValidStartHour(8, 9))
	assert.False(t, catalog.ValidStartHour(18, 19))
	// Последний час: двухблоковый интервал вылезает за закрытие
	assert.False(t, catalog.ValidStartHour(17, 19))
}

func TestCatalog_RoomsOrderedByTier(t *testing.T) {
	catalog, err := NewCatalog(testCatalogConfig())
	require.NoError(t, err)

	codes := make([]string, 0)
	for _, room := range catalog.Rooms() {
		codes = append(codes, room.Code)
	}
	assert.Equal(t, []string{"DM1", "DM2", "PM1", "GM1", "NM1"}, codes)
}

func TestRoom_Label(t *testing.T) {
	room := Room{Code: "DM1", Name: "Diamond Meeting Room 1"}
	assert.Equal(t, "DM1 · Diamond Meeting Room 1", room.Label())
}
