package get_last_stay

import (
	"context"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

type CustomerService interface {
	LoadLastStay(ctx context.Context, name string) (*domain.LastStay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
