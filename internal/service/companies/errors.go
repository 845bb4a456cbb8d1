package companies

import (
	"errors"
	"fmt"
)

var (
	// ErrCompanyNotFound возвращается, когда компания не найдена в реестре
	ErrCompanyNotFound = errors.New("company not found")

	// ErrDuplicateName возвращается при попытке добавить компанию с занятым именем
	ErrDuplicateName = errors.New("company name already exists")

	// ErrInvalidTier возвращается, когда уровень спонсорства неизвестен каталогу
	ErrInvalidTier = errors.New("invalid sponsor tier")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrHasBookings возвращается при попытке удалить компанию с бронированиями
	ErrHasBookings = errors.New("company has existing bookings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// HasBookingsError ошибка удаления компании с деталями числа бронирований
// Разворачивается в ErrHasBookings через errors.Is
type HasBookingsError struct {
	Company string // Имя компании
	Count   int    // Число бронирований, мешающих удалению
}

func (e *HasBookingsError) Error() string {
	return fmt.Sprintf("%v: company %q has %d bookings", ErrHasBookings, e.Company, e.Count)
}

func (e *HasBookingsError) Unwrap() error {
	return ErrHasBookings
}
