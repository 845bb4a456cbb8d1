package disable_slot

import (
	"time"

	disableSlot "github.com/dkomnin/APEC-BookingService/internal/usecase/disable_slot"
)

// DisableSlotRequest HTTP request model
type DisableSlotRequest struct {
	Date      string  `json:"date"` // "2025-10-29"
	Room      string  `json:"room"`
	StartHour int     `json:"startHour"`
	Blocks    int     `json:"blocks"`
	Note      *string `json:"note,omitempty"`
}

// DisabledSlotResponse HTTP response model
type DisabledSlotResponse struct {
	ID        int64   `json:"id"`
	Date      string  `json:"date"`
	Room      string  `json:"room"`
	RoomLabel string  `json:"roomLabel"`
	StartHour int     `json:"startHour"`
	EndHour   int     `json:"endHour"`
	Note      *string `json:"note,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DisableSlotRequest) ToUseCaseRequest() *disableSlot.Request {
	return &disableSlot.Request{
		Date:      r.Date,
		RoomCode:  r.Room,
		StartHour: r.StartHour,
		Blocks:    r.Blocks,
		Note:      r.Note,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *disableSlot.Response) *DisabledSlotResponse {
	return &DisabledSlotResponse{
		ID:        resp.ID,
		Date:      resp.Date,
		Room:      resp.RoomCode,
		RoomLabel: resp.RoomLabel,
		StartHour: resp.StartHour,
		EndHour:   resp.EndHour,
		Note:      resp.Note,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
