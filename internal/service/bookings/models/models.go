package models

import (
	"time"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос списка бронирований на дату
type ListBookingsRequest struct {
	Date     string  `json:"date"`
	RoomCode *string `json:"room,omitempty"`    // Фильтр по комнате (опционально)
	Company  *string `json:"company,omitempty"` // Фильтр по компании (опционально)
}

// DailyUsageRequest запрос дневной занятости компании
type DailyUsageRequest struct {
	Date    string `json:"date"`
	Company string `json:"company"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"` // "2025-10-29"
	RoomCode  string `json:"room"`
	Tier      string `json:"tier"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Blocks    int    `json:"blocks"`

	CreatedAt time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// DailyUsageResponse занятые блоки компании за дату и дневной лимит
type DailyUsageResponse struct {
	Date    string `json:"date"`
	Company string `json:"company"`
	Total   int    `json:"total"`
	Limit   int    `json:"limit"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:        b.ID,
		Date:      b.Date,
		RoomCode:  b.RoomCode,
		Tier:      b.Tier,
		Company:   b.Company,
		Email:     b.Email,
		StartHour: b.StartHour,
		EndHour:   b.EndHour,
		Blocks:    b.Blocks,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
