package disabledslots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда блокировка не найдена
	ErrSlotNotFound = errors.New("disabled slot not found")

	// ErrInvalidDate возвращается, когда дата не входит в даты события
	ErrInvalidDate = errors.New("invalid event date")

	// ErrRoomNotFound возвращается, когда код комнаты неизвестен каталогу
	ErrRoomNotFound = errors.New("room not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
