package customers

import (
	"time"

	"github.com/m04kA/CBH-BookingService/internal/domain"
	"github.com/m04kA/CBH-BookingService/pkg/debounce"
)

// Autocomplete дебаунсер подсказок имен клиентов
// Семантика (окно дебаунса, отбрасывание устаревших ответов) - в pkg/debounce
type Autocomplete = debounce.Debouncer[[]domain.CustomerSuggestion]

// NewAutocomplete создает дебаунсер поверх Suggest сервиса
// delay <= 0 заменяется на debounce.DefaultDelay
func NewAutocomplete(svc *Service, delay time.Duration) *Autocomplete {
	return debounce.New(svc.Suggest, delay)
}
