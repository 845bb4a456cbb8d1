package list_rooms

import "github.com/dkomnin/APEC-BookingService/internal/domain"

// RoomItem комната каталога
type RoomItem struct {
	Code     string   `json:"code"`
	Label    string   `json:"label"`
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Location string   `json:"location,omitempty"`
	Capacity int      `json:"capacity,omitempty"`
	Features []string `json:"features,omitempty"`
}

// TierSection секция комнат одного уровня спонсорства
type TierSection struct {
	Tier      string     `json:"tier"`
	TierLabel string     `json:"tierLabel"`
	Rooms     []RoomItem `json:"rooms"`
}

// RoomsResponse HTTP response model: каталог комнат по уровням
type RoomsResponse struct {
	EventDates []string      `json:"eventDates"`
	Hours      []int         `json:"hours"`
	MaxBlocks  int           `json:"maxBlocks"`
	Sections   []TierSection `json:"sections"`
}

// FromCatalog строит ответ из каталога
// Уровни идут в конфигурационном порядке, уровни без комнат опускаются
func FromCatalog(catalog *domain.Catalog) *RoomsResponse {
	sections := make([]TierSection, 0, len(catalog.Tiers()))

	for _, tier := range catalog.Tiers() {
		codes := catalog.RoomsForTier(tier)
		if len(codes) == 0 {
			continue
		}

		rooms := make([]RoomItem, 0, len(codes))
		for _, code := range codes {
			room, ok := catalog.Room(code)
			if !ok {
				continue
			}
			rooms = append(rooms, RoomItem{
				Code:     room.Code,
				Label:    room.Label(),
				Name:     room.Name,
				Category: room.Category,
				Location: room.Location,
				Capacity: room.Capacity,
				Features: room.Features,
			})
		}

		sections = append(sections, TierSection{
			Tier:      string(tier),
			TierLabel: catalog.TierLabel(tier),
			Rooms:     rooms,
		})
	}

	return &RoomsResponse{
		EventDates: catalog.EventDates(),
		Hours:      catalog.Hours(),
		MaxBlocks:  catalog.MaxBlocks(),
		Sections:   sections,
	}
}
