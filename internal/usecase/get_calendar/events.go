package get_calendar

import (
	"fmt"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// ToEvents преобразует строки бронирований в события календаря.
// Чистая и тотальная функция: каждая строка дает ровно одно событие.
//
// Хранимая дата выезда включительна, а календарный виджет трактует
// end как исключительную границу, поэтому end сдвигается на день
// вперед - так последний день проживания занимает полную клетку.
// Цвет детерминирован типом номера; неизвестный тип получает
// фиксированный запасной цвет
func ToEvents(bookings []*domain.Booking) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(bookings))

	for _, b := range bookings {
		events = append(events, domain.CalendarEvent{
			Start:   b.StartDate,
			End:     b.EndDate.AddDate(0, 0, 1),
			Title:   fmt.Sprintf("%s (%s)", b.CatName, b.CustomerName),
			Color:   domain.RoomColor(b.RoomType),
			Booking: b,
		})
	}

	return events
}
