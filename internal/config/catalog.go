package config

import (
	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// BuildCatalog строит неизменяемый доменный каталог из секции [booking].
// Вызывается один раз при старте процесса; ошибки фатальны.
func (b BookingConfig) BuildCatalog() (*domain.Catalog, error) {
	tierOrder := make([]domain.Tier, 0, len(b.TierOrder))
	for _, tier := range b.TierOrder {
		tierOrder = append(tierOrder, domain.Tier(tier))
	}

	tierLabels := make(map[domain.Tier]string, len(b.Tiers))
	for tier, label := range b.Tiers {
		tierLabels[domain.Tier(tier)] = label
	}

	rooms := make([]domain.Room, 0, len(b.Rooms))
	for _, room := range b.Rooms {
		rooms = append(rooms, domain.Room{
			Code:     room.Code,
			Tier:     domain.Tier(room.Tier),
			Name:     room.Name,
			Category: room.Category,
			Location: room.Location,
			Capacity: room.Capacity,
			Order:    room.Order,
			Features: room.Features,
		})
	}

	return domain.NewCatalog(domain.CatalogConfig{
		EventDates:             b.EventDates,
		OpenHour:               b.OpenHour,
		CloseHour:              b.CloseHour,
		MaxBlocks:              b.MaxBlocks,
		CatchallTier:           domain.Tier(b.CatchallTier),
		GeneralRoomCode:        b.GeneralRoomCode,
		EmptyTierAllowsAnyRoom: b.EmptyTierAllowsAnyRoom,
		TierOrder:              tierOrder,
		TierLabels:             tierLabels,
		Rooms:                  rooms,
	})
}
