package admit_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("admit_booking: invalid input data")

	// ErrInvalidDate возвращается, когда дата не входит в даты события
	ErrInvalidDate = errors.New("admit_booking: date is not an event date")

	// ErrRoomNotFound возвращается, когда код комнаты неизвестен каталогу
	ErrRoomNotFound = errors.New("admit_booking: room not found")

	// ErrCompanyNotFound возвращается, когда компания отсутствует в реестре
	ErrCompanyNotFound = errors.New("admit_booking: company not found in roster")

	// ErrRoomNotAllowed возвращается, когда уровень спонсорства не даёт доступ к комнате
	ErrRoomNotAllowed = errors.New("admit_booking: room is not available for this tier")

	// ErrInvalidHours возвращается, когда интервал не укладывается в рабочие часы
	ErrInvalidHours = errors.New("admit_booking: invalid start hour or duration")

	// ErrDailyLimitExceeded возвращается при превышении дневного лимита блоков компании
	ErrDailyLimitExceeded = errors.New("admit_booking: daily booking limit exceeded")

	// ErrSlotTaken возвращается, когда интервал пересекается с существующим бронированием
	ErrSlotTaken = errors.New("admit_booking: slot overlaps an existing booking")

	// ErrSlotDisabled возвращается, когда интервал пересекается с административной блокировкой
	ErrSlotDisabled = errors.New("admit_booking: slot is disabled by administrator")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("admit_booking: internal error")
)

// DailyLimitError ошибка превышения дневного лимита с деталями занятости
// Разворачивается в ErrDailyLimitExceeded через errors.Is
type DailyLimitError struct {
	Company      string // Компания, для которой превышен лимит
	Date         string // Дата, на которую превышен лимит
	CurrentTotal int    // Уже занятые блоки компании за дату
	Requested    int    // Запрошенные блоки
	Cap          int    // Дневной лимит блоков
}

func (e *DailyLimitError) Error() string {
	return fmt.Sprintf("%v: company %q has %d of %d blocks on %s, requested %d more",
		ErrDailyLimitExceeded, e.Company, e.CurrentTotal, e.Cap, e.Date, e.Requested)
}

func (e *DailyLimitError) Unwrap() error {
	return ErrDailyLimitExceeded
}
