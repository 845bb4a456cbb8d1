package get_availability

import "errors"

var (
	// ErrInvalidDate возвращается, когда дата не входит в даты события
	ErrInvalidDate = errors.New("get_availability: date is not an event date")

	// ErrRoomNotFound возвращается, когда код комнаты неизвестен каталогу
	ErrRoomNotFound = errors.New("get_availability: room not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability: internal error")
)
