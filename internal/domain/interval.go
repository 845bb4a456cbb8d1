package domain

// HourRange полуоткрытый интервал часов [Start, End).
// Единственное правило пересечения для всех проверок конфликтов:
// бронирование против бронирования и бронирование против блокировки.
type HourRange struct {
	Start int
	End   int
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов.
// Интервалы, которые только граничат (End == Start), НЕ пересекаются.
func (r HourRange) Overlaps(other HourRange) bool {
	return !(r.End <= other.Start || other.End <= r.Start)
}

// Blocks возвращает длину интервала в блоках (часах)
func (r HourRange) Blocks() int {
	return r.End - r.Start
}
