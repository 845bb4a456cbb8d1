package admit_booking

import "time"

// Request модель запроса на допуск бронирования
type Request struct {
	Date      string  // Дата события в формате YYYY-MM-DD
	RoomCode  string  // Код переговорной комнаты (например, "DM1")
	StartHour int     // Час начала (целый час, 24-часовой формат)
	Blocks    int     // Длительность в часовых блоках
	Company   string  // Имя компании из реестра или селектор "Other"
	OtherName *string // Произвольное имя компании при селекторе "Other"
	Email     string  // Контактный email бронирующего
}

// Response модель ответа с допущенным бронированием
type Response struct {
	ID        int64  // ID созданного бронирования
	Date      string // Дата события
	RoomCode  string // Код комнаты
	RoomLabel string // Человекочитаемая подпись комнаты
	Tier      string // Зафиксированный уровень спонсорства
	TierLabel string // Подпись уровня
	Company   string // Зафиксированное имя компании
	Email     string // Контактный email
	StartHour int    // Час начала
	EndHour   int    // Час окончания (не включается)
	Blocks    int    // Длительность в блоках

	CreatedAt time.Time // Время создания
}
