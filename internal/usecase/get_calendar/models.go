package get_calendar

import "github.com/m04kA/CBH-BookingService/internal/domain"

// Request модель запроса событий календаря за месяц
type Request struct {
	Month int // 1-12
	Year  int
}

// Response модель ответа со списком событий
// События несут обратную ссылку на исходную строку бронирования
type Response struct {
	Events []domain.CalendarEvent
}
