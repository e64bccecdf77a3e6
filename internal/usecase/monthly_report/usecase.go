package monthly_report

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// Request модель запроса отчета за месяц
type Request struct {
	Month int // 1-12
	Year  int
}

// UseCase use case построения помесячного отчета по выручке
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

// Execute строит отчет по выручке за запрошенный месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.MonthlyReport, error) {
	if req.Month < 1 || req.Month > 12 || req.Year < 1 {
		return nil, fmt.Errorf("%w: month=%d year=%d", ErrInvalidPeriod, req.Month, req.Year)
	}

	from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	// Статус в предикат отчета не входит: строка попадает в отчет
	// по одной лишь дате заезда, отмененные строки тоже считаются
	bookings, err := uc.bookingRepo.GetByPeriod(ctx, domain.BookingsPeriodFilter{
		From:             from,
		To:               to,
		IncludeCancelled: true,
	})
	if err != nil {
		uc.logger.Error("MonthlyReport: repository error for %d-%02d: %v", req.Year, req.Month, err)
		return nil, fmt.Errorf("%w: Execute - repository error: %v", ErrStoreUnavailable, err)
	}

	report := Aggregate(bookings, req.Month, req.Year)

	uc.logger.Info("MonthlyReport: %d-%02d, %d booking(s), revenue=%.2f",
		req.Year, req.Month, report.TotalBookings, report.TotalRevenue)

	return report, nil
}
