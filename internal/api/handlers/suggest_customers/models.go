package suggest_customers

import (
	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// SuggestCustomersResponse HTTP response model
type SuggestCustomersResponse struct {
	Suggestions []string `json:"suggestions"`
}

// FromDomainSuggestions конвертирует подсказки домена в HTTP response
func FromDomainSuggestions(suggestions []domain.CustomerSuggestion) *SuggestCustomersResponse {
	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.Name)
	}
	return &SuggestCustomersResponse{Suggestions: names}
}
