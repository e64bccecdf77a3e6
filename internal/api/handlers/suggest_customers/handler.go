package suggest_customers

import (
	"errors"
	"net/http"

	"github.com/m04kA/CBH-BookingService/internal/api/handlers"
	"github.com/m04kA/CBH-BookingService/internal/service/customers"
)

const msgStoreUnavailable = "хранилище временно недоступно"

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

// Handle GET /api/v1/customers/suggest?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	suggestions, err := h.service.Suggest(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrStoreUnavailable):
			h.logger.Error("GET /customers/suggest - Store unavailable: query=%q, error=%v", query, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreUnavailable)

		default:
			h.logger.Error("GET /customers/suggest - Failed to suggest customers: query=%q, error=%v",
				query, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSuggestions(suggestions))
}
