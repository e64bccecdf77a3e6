package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// UseCase use case получения событий календаря за месяц
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает события календаря для всех бронирований,
// проживание которых пересекает запрошенный месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 1 {
		return nil, fmt.Errorf("%w: month=%d year=%d", ErrInvalidPeriod, req.Month, req.Year)
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1) // последний день месяца

	bookings, err := uc.bookingRepo.GetByPeriod(ctx, domain.BookingsPeriodFilter{
		From: from,
		To:   to,
	})
	if err != nil {
		uc.logger.Error("GetCalendar: repository error for %d-%02d: %v", req.Year, req.Month, err)
		return nil, fmt.Errorf("%w: Execute - repository error: %v", ErrStoreUnavailable, err)
	}

	uc.logger.Info("GetCalendar: %d booking line(s) for %d-%02d", len(bookings), req.Year, req.Month)

	return &Response{Events: ToEvents(bookings)}, nil
}
