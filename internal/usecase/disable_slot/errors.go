package disable_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("disable_slot: invalid input data")

	// ErrInvalidDate возвращается, когда дата не входит в даты события
	ErrInvalidDate = errors.New("disable_slot: date is not an event date")

	// ErrRoomNotFound возвращается, когда код комнаты неизвестен каталогу
	ErrRoomNotFound = errors.New("disable_slot: room not found")

	// ErrInvalidHours возвращается, когда интервал не укладывается в рабочие часы
	ErrInvalidHours = errors.New("disable_slot: invalid hour range")

	// ErrBookingExists возвращается, когда интервал пересекается с существующим бронированием
	ErrBookingExists = errors.New("disable_slot: interval overlaps an existing booking")

	// ErrAlreadyDisabled возвращается, когда интервал пересекается с другой блокировкой
	ErrAlreadyDisabled = errors.New("disable_slot: interval overlaps an existing disabled slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("disable_slot: internal error")
)
