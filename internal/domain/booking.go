package domain

import "time"

// Booking represents a committed meeting-room booking.
// Tier и название компании фиксируются в момент создания (snapshot),
// и не пересчитываются при изменении реестра компаний.
type Booking struct {
	ID        int64
	Date      string // YYYY-MM-DD, одна из дат мероприятия
	RoomCode  string
	Tier      string // Снимок уровня спонсорства на момент создания
	Company   string
	Email     string
	StartHour int
	EndHour   int // StartHour + Blocks, правая граница не включается
	Blocks    int
	CreatedAt time.Time
}

// Range возвращает занимаемый бронированием интервал часов
func (b *Booking) Range() HourRange {
	return HourRange{Start: b.StartHour, End: b.EndHour}
}

// DisabledSlot represents an administrator hold on a room/time range.
// Блокирует создание бронирований, но не участвует в суточной квоте.
type DisabledSlot struct {
	ID        int64
	Date      string
	RoomCode  string
	StartHour int
	EndHour   int
	Note      *string
	CreatedAt time.Time
}

// Range возвращает заблокированный интервал часов
func (s *DisabledSlot) Range() HourRange {
	return HourRange{Start: s.StartHour, End: s.EndHour}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Date     string  // Обязательный параметр
	RoomCode *string // Фильтр по комнате (опционально)
	Company  *string // Фильтр по компании (опционально)
}
