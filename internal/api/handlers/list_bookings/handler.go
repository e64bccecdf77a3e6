package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/CBH-BookingService/internal/api/handlers"
	"github.com/m04kA/CBH-BookingService/internal/service/bookings"
)

const msgInvalidPeriod = "некорректный месяц или год"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?month=&year=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.ListByMonth(r.Context(), month, year)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid period: month=%d, year=%d", month, year)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: month=%d, year=%d, error=%v",
				month, year, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - %d line(s) for %d-%02d", len(result.Bookings), year, month)
	handlers.RespondJSON(w, http.StatusOK, result)
}
