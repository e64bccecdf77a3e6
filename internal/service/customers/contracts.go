package customers

import (
	"context"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Upsert(ctx context.Context, name string) (*domain.Customer, error)
	SuggestByName(ctx context.Context, substr string, limit uint64) ([]domain.CustomerSuggestion, error)
}

// BookingRepository интерфейс репозитория бронирований
// Нужен для загрузки последнего проживания клиента
type BookingRepository interface {
	GetLastByCustomerName(ctx context.Context, customerName string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
