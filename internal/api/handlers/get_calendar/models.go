package get_calendar

import (
	"github.com/m04kA/CBH-BookingService/internal/domain"
	"github.com/m04kA/CBH-BookingService/internal/service/bookings/models"
)

// CalendarEventResponse одно событие календаря
// End эксклюзивна: хранимая дата выезда, сдвинутая на один день
type CalendarEventResponse struct {
	Start   string                  `json:"start"` // "2024-05-01"
	End     string                  `json:"end"`
	Title   string                  `json:"title"`
	Color   string                  `json:"color"`
	Booking *models.BookingResponse `json:"booking"`
}

// GetCalendarResponse HTTP response model
type GetCalendarResponse struct {
	Events []CalendarEventResponse `json:"events"`
}

// FromDomainEvents конвертирует события домена в HTTP response
func FromDomainEvents(events []domain.CalendarEvent) *GetCalendarResponse {
	result := make([]CalendarEventResponse, 0, len(events))
	for _, event := range events {
		result = append(result, CalendarEventResponse{
			Start:   event.Start.Format(domain.DateFormat),
			End:     event.End.Format(domain.DateFormat),
			Title:   event.Title,
			Color:   event.Color,
			Booking: models.FromDomainBooking(event.Booking),
		})
	}
	return &GetCalendarResponse{Events: result}
}
