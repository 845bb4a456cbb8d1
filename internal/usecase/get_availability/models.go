package get_availability

// Виды занятых интервалов
const (
	KindBooking  = "booking"
	KindDisabled = "disabled"
)

// Request модель запроса занятости комнаты на дату
type Request struct {
	Date     string // Дата события в формате YYYY-MM-DD
	RoomCode string // Код комнаты
}

// Item занятый интервал комнаты
type Item struct {
	Kind      string  // booking или disabled
	StartHour int     // Час начала
	EndHour   int     // Час окончания (не включается)
	Company   string  // Компания (только для бронирований)
	Tier      string  // Уровень спонсорства (только для бронирований)
	Note      *string // Причина блокировки (только для disabled)
}

// Response модель ответа с занятостью комнаты
type Response struct {
	Date      string   // Дата события
	RoomCode  string   // Код комнаты
	RoomLabel string   // Человекочитаемая подпись комнаты
	Hours     []int    // Допустимые часы начала
	Taken     [][2]int // Занятые интервалы [start, end) в порядке начала
	Items     []Item   // Детали занятых интервалов в том же порядке
}
