package list_bookings

import (
	"context"

	"github.com/m04kA/CBH-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	ListByMonth(ctx context.Context, month, year int) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
