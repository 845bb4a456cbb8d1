package mailer

import (
	"fmt"
	"strings"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// Digest письмо-сводка бронирований одного получателя
type Digest struct {
	Email   string // Получатель
	Subject string
	Body    string
}

// BuildDigests группирует бронирования по email и собирает тексты писем
// Порядок получателей следует порядку бронирований (репозиторий отдаёт их
// отсортированными по email и часу начала)
func BuildDigests(date string, bookings []*domain.Booking) []Digest {
	if len(bookings) == 0 {
		return nil
	}

	grouped := make(map[string][]*domain.Booking)
	order := make([]string, 0)

	for _, b := range bookings {
		if _, seen := grouped[b.Email]; !seen {
			order = append(order, b.Email)
		}
		grouped[b.Email] = append(grouped[b.Email], b)
	}

	digests := make([]Digest, 0, len(order))
	for _, email := range order {
		digests = append(digests, Digest{
			Email:   email,
			Subject: fmt.Sprintf("Your meeting room bookings for %s", date),
			Body:    buildBody(grouped[email]),
		})
	}

	return digests
}

// buildBody собирает текст письма со списком бронирований получателя
func buildBody(bookings []*domain.Booking) string {
	lines := []string{
		"Hello,",
		"",
		"Here is your booking summary:",
		"",
	}

	for _, b := range bookings {
		lines = append(lines, fmt.Sprintf("- %s %02d:00–%02d:00 %s (%s) – %s",
			b.Date, b.StartHour, b.EndHour, b.RoomCode, b.Tier, b.Company))
	}

	lines = append(lines, "", "Thank you.")

	return strings.Join(lines, "\n")
}
