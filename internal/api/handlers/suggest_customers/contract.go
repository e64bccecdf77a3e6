package suggest_customers

import (
	"context"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

type CustomerService interface {
	Suggest(ctx context.Context, query string) ([]domain.CustomerSuggestion, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
