package domain

import "time"

// Calendar palette: deterministic constant color per room tier
// Unknown tiers map to FallbackColor and must never render undefined
const FallbackColor = "#9E9E9E"

var roomColors = map[RoomType]string{
	RoomStandard:  "#4CAF50",
	RoomDeluxe:    "#2196F3",
	RoomPremium:   "#9C27B0",
	RoomSuite:     "#FF9800",
	RoomVIP:       "#F44336",
	RoomPenthouse: "#795548",
}

// RoomColor returns the calendar color for the tier
func RoomColor(room RoomType) string {
	if color, ok := roomColors[room]; ok {
		return color
	}
	return FallbackColor
}

// CalendarEvent is a half-open [Start, End) displayable interval
// End is the stored inclusive end date shifted by one day, because the
// calendar widget treats its end field as exclusive
type CalendarEvent struct {
	Start time.Time
	End   time.Time
	Title string
	Color string

	// Back-reference to the source row for in-place edit/delete
	// from a detail view without re-fetching
	Booking *Booking
}
