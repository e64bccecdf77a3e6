package get_last_stay

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/CBH-BookingService/internal/api/handlers"
	"github.com/m04kA/CBH-BookingService/internal/service/customers"
)

const (
	msgMissingName      = "не указано имя клиента"
	msgNoLastStay       = "у клиента нет предыдущих бронирований"
	msgStoreUnavailable = "хранилище временно недоступно"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers/last-stay?name=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		h.logger.Warn("GET /customers/last-stay - Missing customer name")
		handlers.RespondBadRequest(w, msgMissingName)
		return
	}

	stay, err := h.service.LoadLastStay(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrNoLastStay):
			h.logger.Info("GET /customers/last-stay - No previous stay: customer=%q", name)
			handlers.RespondNotFound(w, msgNoLastStay)

		case errors.Is(err, customers.ErrStoreUnavailable):
			h.logger.Error("GET /customers/last-stay - Store unavailable: customer=%q, error=%v", name, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /customers/last-stay - Failed to load last stay: customer=%q, error=%v",
				name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customers/last-stay - Last stay loaded: customer=%q, cats=%d", name, len(stay.CatNames))
	handlers.RespondJSON(w, http.StatusOK, FromDomainLastStay(stay))
}
