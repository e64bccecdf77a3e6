package get_monthly_report

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/CBH-BookingService/internal/api/handlers"
	monthlyReport "github.com/m04kA/CBH-BookingService/internal/usecase/monthly_report"
)

const (
	msgInvalidPeriod    = "некорректный месяц или год"
	msgStoreUnavailable = "хранилище временно недоступно"
)

type Handler struct {
	useCase MonthlyReportUseCase
	logger  Logger
}

func NewHandler(useCase MonthlyReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/monthly?month=&year=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /reports/monthly - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /reports/monthly - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	report, err := h.useCase.Execute(r.Context(), &monthlyReport.Request{Month: month, Year: year})
	if err != nil {
		switch {
		case errors.Is(err, monthlyReport.ErrInvalidPeriod):
			h.logger.Warn("GET /reports/monthly - Invalid period: month=%d, year=%d", month, year)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, monthlyReport.ErrStoreUnavailable):
			h.logger.Error("GET /reports/monthly - Store unavailable: month=%d, year=%d, error=%v",
				month, year, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /reports/monthly - Failed to build report: month=%d, year=%d, error=%v",
				month, year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/monthly - Report built: %d-%02d, revenue=%.2f",
		year, month, report.TotalRevenue)
	handlers.RespondJSON(w, http.StatusOK, FromDomainReport(report))
}
