package admit_booking

import (
	"fmt"
	"strings"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Date) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RoomCode) == "" {
		return fmt.Errorf("%w: room is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Company) == "" {
		return fmt.Errorf("%w: company is required", ErrInvalidInput)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email must contain @", ErrInvalidInput)
	}

	return nil
}

// resolveOtherCompany проверяет и нормализует произвольное имя компании
// для селектора "Other"
func resolveOtherCompany(otherName *string) (string, error) {
	if otherName == nil {
		return "", fmt.Errorf("%w: company name required for Other", ErrInvalidInput)
	}

	name := strings.TrimSpace(*otherName)
	if name == "" {
		return "", fmt.Errorf("%w: company name required for Other", ErrInvalidInput)
	}
	if len(name) > domain.MaxCompanyNameLength {
		return "", fmt.Errorf("%w: company name is too long", ErrInvalidInput)
	}

	return name, nil
}

// clampBlocks приводит длительность к допустимому диапазону [MinBlocks, maxBlocks]
// Выход за границы не ошибка: значение молча обрезается
func clampBlocks(blocks, maxBlocks int) int {
	if blocks < domain.MinBlocks {
		return domain.MinBlocks
	}
	if blocks > maxBlocks {
		return maxBlocks
	}
	return blocks
}

// findOverlap ищет первое бронирование, пересекающееся с запрошенным интервалом
func findOverlap(requested domain.HourRange, bookings []*domain.Booking) *domain.Booking {
	for _, booking := range bookings {
		if requested.Overlaps(booking.Range()) {
			return booking
		}
	}
	return nil
}

// findDisabledOverlap ищет первую блокировку, пересекающуюся с запрошенным интервалом
func findDisabledOverlap(requested domain.HourRange, slots []*domain.DisabledSlot) *domain.DisabledSlot {
	for _, slot := range slots {
		if requested.Overlaps(slot.Range()) {
			return slot
		}
	}
	return nil
}
