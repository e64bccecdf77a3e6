package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNoteLength     = 500
	MaxCatsPerBooking = 10

	// SuggestLimit максимальное количество подсказок автодополнения
	SuggestLimit = 5
)
