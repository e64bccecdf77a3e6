package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/CBH-BookingService/internal/domain"
	"github.com/m04kA/CBH-BookingService/internal/pricing"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CreateBatch(ctx context.Context, bookings []*domain.Booking) ([]*domain.Booking, error)
}

// CustomerResolver интерфейс разрешения клиента по имени
type CustomerResolver interface {
	ResolveByName(ctx context.Context, name string) (int64, error)
}

// PriceCalculator интерфейс калькулятора стоимости проживания
type PriceCalculator interface {
	Summary(cats []domain.CatLine, start, end time.Time, isDeposited bool) pricing.Summary
	LineTotal(room domain.RoomType, nights int) float64
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
