package models

import (
	"time"

	"github.com/dkomnin/APEC-BookingService/internal/domain"
)

// Request модели

// ListDisabledSlotsRequest запрос списка блокировок на дату
type ListDisabledSlotsRequest struct {
	Date     string  `json:"date"`
	RoomCode *string `json:"room,omitempty"` // Фильтр по комнате (опционально)
}

// Response модели

// DisabledSlotResponse ответ с данными блокировки
type DisabledSlotResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	RoomCode  string  `json:"room"`
	StartHour int     `json:"startHour"`
	EndHour   int     `json:"endHour"`
	Note      *string `json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// DisabledSlotListResponse ответ со списком блокировок
type DisabledSlotListResponse struct {
	Slots []DisabledSlotResponse `json:"slots"`
}

// Методы конвертации

// FromDomainDisabledSlot конвертирует domain модель в DTO
func FromDomainDisabledSlot(s *domain.DisabledSlot) *DisabledSlotResponse {
	if s == nil {
		return nil
	}

	return &DisabledSlotResponse{
		ID:        s.ID,
		Date:      s.Date,
		RoomCode:  s.RoomCode,
		StartHour: s.StartHour,
		EndHour:   s.EndHour,
		Note:      s.Note,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainDisabledSlotList конвертирует список domain моделей в DTO
func FromDomainDisabledSlotList(slots []*domain.DisabledSlot) *DisabledSlotListResponse {
	result := make([]DisabledSlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, *FromDomainDisabledSlot(s))
	}
	return &DisabledSlotListResponse{Slots: result}
}
