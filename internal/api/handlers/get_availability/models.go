package get_availability

import (
	getAvailability "github.com/dkomnin/APEC-BookingService/internal/usecase/get_availability"
)

// AvailabilityItem занятый интервал комнаты
type AvailabilityItem struct {
	Kind      string  `json:"kind"` // booking или disabled
	StartHour int     `json:"startHour"`
	EndHour   int     `json:"endHour"`
	Company   string  `json:"company,omitempty"`
	Tier      string  `json:"tier,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date      string             `json:"date"`
	Room      string             `json:"room"`
	RoomLabel string             `json:"roomLabel"`
	Hours     []int              `json:"hours"`
	Taken     [][2]int           `json:"taken"`
	Items     []AvailabilityItem `json:"items"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	items := make([]AvailabilityItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, AvailabilityItem{
			Kind:      item.Kind,
			StartHour: item.StartHour,
			EndHour:   item.EndHour,
			Company:   item.Company,
			Tier:      item.Tier,
			Note:      item.Note,
		})
	}

	return &AvailabilityResponse{
		Date:      resp.Date,
		Room:      resp.RoomCode,
		RoomLabel: resp.RoomLabel,
		Hours:     resp.Hours,
		Taken:     resp.Taken,
		Items:     items,
	}
}
