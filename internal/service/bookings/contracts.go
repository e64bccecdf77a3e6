package bookings

import (
	"context"

	"github.com/m04kA/CBH-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CBH-BookingService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByPeriod(ctx context.Context, filter domain.BookingsPeriodFilter) ([]*domain.Booking, error)
	Update(ctx context.Context, id int64, fields bookingRepo.UpdateFields) error
	Delete(ctx context.Context, id int64) error
}

// PriceCalculator интерфейс калькулятора стоимости
// Нужен для перерасчета строки при изменении дат проживания
type PriceCalculator interface {
	LineTotal(room domain.RoomType, nights int) float64
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
