package domain

import (
	"fmt"
	"sort"
	"time"
)

// Tier спонсорская категория: определяет, какие комнаты доступны компании
type Tier string

// Room статическое описание комнаты из каталога
type Room struct {
	Code     string
	Tier     Tier
	Name     string
	Category string
	Location string
	Capacity int
	Order    int
	Features []string
}

// Label возвращает отображаемое имя комнаты ("DM1 · Meeting Room 1")
func (r Room) Label() string {
	return fmt.Sprintf("%s · %s", r.Code, r.Name)
}

// CatalogConfig исходные данные для построения каталога.
// Заполняется из конфигурационного файла один раз при старте процесса.
type CatalogConfig struct {
	EventDates             []string
	OpenHour               int
	CloseHour              int
	MaxBlocks              int
	CatchallTier           Tier
	GeneralRoomCode        string
	EmptyTierAllowsAnyRoom bool
	TierOrder              []Tier
	TierLabels             map[Tier]string
	Rooms                  []Room
}

// Catalog неизменяемый каталог комнат и тиров.
// Строится один раз при старте и передается компонентам по ссылке —
// никакого мутируемого глобального состояния.
type Catalog struct {
	eventDates    []string
	eventDateSet  map[string]struct{}
	openHour      int
	closeHour     int
	maxBlocks     int
	catchallTier  Tier
	generalRoom   string
	emptyAllowAny bool
	tierOrder     []Tier
	tierLabels    map[Tier]string
	rooms         map[string]Room
	roomsByTier   map[Tier][]string
	roomList      []Room
}

// NewCatalog строит каталог и валидирует конфигурацию.
// Ошибки конфигурации фатальны: процесс не должен стартовать с битым каталогом.
func NewCatalog(cfg CatalogConfig) (*Catalog, error) {
	if len(cfg.EventDates) == 0 {
		return nil, fmt.Errorf("catalog: event dates are empty")
	}
	if cfg.OpenHour < 0 || cfg.CloseHour > 24 || cfg.OpenHour >= cfg.CloseHour {
		return nil, fmt.Errorf("catalog: invalid operating hours %d..%d", cfg.OpenHour, cfg.CloseHour)
	}
	if cfg.MaxBlocks < MinBlocks {
		return nil, fmt.Errorf("catalog: max blocks must be >= %d", MinBlocks)
	}

	c := &Catalog{
		eventDates:    make([]string, 0, len(cfg.EventDates)),
		eventDateSet:  make(map[string]struct{}, len(cfg.EventDates)),
		openHour:      cfg.OpenHour,
		closeHour:     cfg.CloseHour,
		maxBlocks:     cfg.MaxBlocks,
		catchallTier:  cfg.CatchallTier,
		generalRoom:   cfg.GeneralRoomCode,
		emptyAllowAny: cfg.EmptyTierAllowsAnyRoom,
		tierOrder:     append([]Tier(nil), cfg.TierOrder...),
		tierLabels:    make(map[Tier]string, len(cfg.TierLabels)),
		rooms:         make(map[string]Room, len(cfg.Rooms)),
		roomsByTier:   make(map[Tier][]string, len(cfg.TierOrder)),
	}

	for _, date := range cfg.EventDates {
		if _, err := time.Parse(DateFormat, date); err != nil {
			return nil, fmt.Errorf("catalog: invalid event date %q: %v", date, err)
		}
		if _, ok := c.eventDateSet[date]; ok {
			return nil, fmt.Errorf("catalog: duplicate event date %q", date)
		}
		c.eventDateSet[date] = struct{}{}
		c.eventDates = append(c.eventDates, date)
	}

	knownTiers := make(map[Tier]struct{}, len(cfg.TierOrder))
	for _, tier := range cfg.TierOrder {
		knownTiers[tier] = struct{}{}
		c.tierLabels[tier] = cfg.TierLabels[tier]
		c.roomsByTier[tier] = []string{}
	}
	if _, ok := knownTiers[cfg.CatchallTier]; !ok {
		return nil, fmt.Errorf("catalog: catch-all tier %q is not declared", cfg.CatchallTier)
	}

	// Комнаты сортируются по порядку тиров, внутри тира — по полю order
	tierIndex := make(map[Tier]int, len(cfg.TierOrder))
	for i, tier := range cfg.TierOrder {
		tierIndex[tier] = i
	}

	roomList := append([]Room(nil), cfg.Rooms...)
	sort.SliceStable(roomList, func(i, j int) bool {
		if tierIndex[roomList[i].Tier] != tierIndex[roomList[j].Tier] {
			return tierIndex[roomList[i].Tier] < tierIndex[roomList[j].Tier]
		}
		return roomList[i].Order < roomList[j].Order
	})

	for _, room := range roomList {
		if room.Code == "" {
			return nil, fmt.Errorf("catalog: room with empty code")
		}
		if _, ok := knownTiers[room.Tier]; !ok {
			return nil, fmt.Errorf("catalog: room %q references unknown tier %q", room.Code, room.Tier)
		}
		if _, ok := c.rooms[room.Code]; ok {
			return nil, fmt.Errorf("catalog: duplicate room code %q", room.Code)
		}
		c.rooms[room.Code] = room
		c.roomsByTier[room.Tier] = append(c.roomsByTier[room.Tier], room.Code)
	}
	c.roomList = roomList

	if c.generalRoom != "" {
		if _, ok := c.rooms[c.generalRoom]; !ok {
			return nil, fmt.Errorf("catalog: general room %q is not in the catalog", c.generalRoom)
		}
	}

	return c, nil
}

// IsEventDate проверяет, что дата входит в набор дат мероприятия
func (c *Catalog) IsEventDate(date string) bool {
	_, ok := c.eventDateSet[date]
	return ok
}

// EventDates возвращает даты мероприятия в конфигурационном порядке
func (c *Catalog) EventDates() []string {
	return append([]string(nil), c.eventDates...)
}

// Room возвращает комнату по коду
func (c *Catalog) Room(code string) (Room, bool) {
	room, ok := c.rooms[code]
	return room, ok
}

// TierOf возвращает тир комнаты
func (c *Catalog) TierOf(code string) (Tier, bool) {
	room, ok := c.rooms[code]
	return room.Tier, ok
}

// LabelOf возвращает отображаемое имя комнаты; пустая строка для неизвестного кода
func (c *Catalog) LabelOf(code string) string {
	room, ok := c.rooms[code]
	if !ok {
		return ""
	}
	return room.Label()
}

// RoomsForTier возвращает упорядоченный список кодов комнат, доступных тиру
func (c *Catalog) RoomsForTier(tier Tier) []string {
	return append([]string(nil), c.roomsByTier[tier]...)
}

// RoomAllowedForTier проверяет доступность комнаты для тира.
// Семантика пустого списка задается явным флагом конфигурации
// EmptyTierAllowsAnyRoom, а не выводится из пустоты списка.
func (c *Catalog) RoomAllowedForTier(tier Tier, code string) bool {
	codes := c.roomsByTier[tier]
	if len(codes) == 0 {
		return c.emptyAllowAny
	}
	for _, allowed := range codes {
		if allowed == code {
			return true
		}
	}
	return false
}

// Rooms возвращает все комнаты в каталожном порядке
func (c *Catalog) Rooms() []Room {
	return append([]Room(nil), c.roomList...)
}

// Tiers возвращает тиры в конфигурационном порядке
func (c *Catalog) Tiers() []Tier {
	return append([]Tier(nil), c.tierOrder...)
}

// HasTier проверяет, что тир объявлен в каталоге
func (c *Catalog) HasTier(tier Tier) bool {
	_, ok := c.tierLabels[tier]
	return ok
}

// TierLabel возвращает отображаемую подпись тира
func (c *Catalog) TierLabel(tier Tier) string {
	return c.tierLabels[tier]
}

// Hours возвращает допустимые стартовые слоты (open..close-1)
func (c *Catalog) Hours() []int {
	hours := make([]int, 0, c.closeHour-c.openHour)
	for h := c.openHour; h < c.closeHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// ValidStartHour проверяет, что [startHour, endHour) лежит в рабочих часах
func (c *Catalog) ValidStartHour(startHour, endHour int) bool {
	return startHour >= c.openHour && startHour < c.closeHour && endHour <= c.closeHour
}

// MaxBlocks возвращает суточный лимит блоков на компанию
func (c *Catalog) MaxBlocks() int {
	return c.maxBlocks
}

// CatchallTier возвращает тир для компаний со свободным вводом названия
func (c *Catalog) CatchallTier() Tier {
	return c.catchallTier
}

// GeneralRoomCode возвращает выделенную комнату для catch-all тира.
// Пустая строка означает, что выделенной комнаты нет и действует
// обычная проверка тир-комната.
func (c *Catalog) GeneralRoomCode() string {
	return c.generalRoom
}
