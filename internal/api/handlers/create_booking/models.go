package create_booking

import (
	"time"

	admitBooking "github.com/dkomnin/APEC-BookingService/internal/usecase/admit_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date      string  `json:"date"` // "2025-10-29"
	Room      string  `json:"room"` // "DM1"
	StartHour int     `json:"startHour"`
	Blocks    int     `json:"blocks"`
	Company   string  `json:"company"`                // имя из реестра или "Other"
	OtherName *string `json:"companyOther,omitempty"` // имя при селекторе "Other"
	Tier      string  `json:"tier,omitempty"`         // присланный клиентом уровень; сервер его не читает
	Email     string  `json:"email"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	Room      string `json:"room"`
	RoomLabel string `json:"roomLabel"`
	Tier      string `json:"tier"`
	TierLabel string `json:"tierLabel"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	StartHour int    `json:"startHour"`
	EndHour   int    `json:"endHour"`
	Blocks    int    `json:"blocks"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *admitBooking.Request {
	return &admitBooking.Request{
		Date:      r.Date,
		RoomCode:  r.Room,
		StartHour: r.StartHour,
		Blocks:    r.Blocks,
		Company:   r.Company,
		OtherName: r.OtherName,
		Email:     r.Email,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *admitBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		Date:      resp.Date,
		Room:      resp.RoomCode,
		RoomLabel: resp.RoomLabel,
		Tier:      resp.Tier,
		TierLabel: resp.TierLabel,
		Company:   resp.Company,
		Email:     resp.Email,
		StartHour: resp.StartHour,
		EndHour:   resp.EndHour,
		Blocks:    resp.Blocks,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
