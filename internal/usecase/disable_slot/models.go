package disable_slot

import "time"

// Request модель запроса на административную блокировку слота
type Request struct {
	Date      string  // Дата события в формате YYYY-MM-DD
	RoomCode  string  // Код комнаты
	StartHour int     // Час начала
	Blocks    int     // Длительность в часовых блоках
	Note      *string // Причина блокировки (опционально)
}

// Response модель ответа с созданной блокировкой
type Response struct {
	ID        int64   // ID блокировки
	Date      string  // Дата события
	RoomCode  string  // Код комнаты
	RoomLabel string  // Человекочитаемая подпись комнаты
	StartHour int     // Час начала
	EndHour   int     // Час окончания
	Note      *string // Причина блокировки

	CreatedAt time.Time // Время создания
}
