package get_monthly_report

import (
	"context"

	"github.com/m04kA/CBH-BookingService/internal/domain"
	monthlyReport "github.com/m04kA/CBH-BookingService/internal/usecase/monthly_report"
)

type MonthlyReportUseCase interface {
	Execute(ctx context.Context, req *monthlyReport.Request) (*domain.MonthlyReport, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
