package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/CBH-BookingService/internal/api/handlers"
	getCalendar "github.com/m04kA/CBH-BookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidPeriod    = "некорректный месяц или год"
	msgStoreUnavailable = "хранилище временно недоступно"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/events?month=&year=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /calendar/events - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /calendar/events - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{Month: month, Year: year})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidPeriod):
			h.logger.Warn("GET /calendar/events - Invalid period: month=%d, year=%d", month, year)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		case errors.Is(err, getCalendar.ErrStoreUnavailable):
			h.logger.Error("GET /calendar/events - Store unavailable: month=%d, year=%d, error=%v",
				month, year, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /calendar/events - Failed to build calendar: month=%d, year=%d, error=%v",
				month, year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/events - %d event(s) for %d-%02d", len(result.Events), year, month)
	handlers.RespondJSON(w, http.StatusOK, FromDomainEvents(result.Events))
}
