package get_calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestToEvents_ExclusiveEndShift(t *testing.T) {
	booking := &domain.Booking{
		ID:           1,
		CustomerName: "Анна",
		CatName:      "Mochi",
		RoomType:     domain.RoomStandard,
		StartDate:    date(2024, 5, 1),
		EndDate:      date(2024, 5, 3),
	}

	events := ToEvents([]*domain.Booking{booking})
	require.Len(t, events, 1)

	// Хранимый конец включителен, календарный - исключителен
	assert.Equal(t, date(2024, 5, 1), events[0].Start)
	assert.Equal(t, date(2024, 5, 4), events[0].End)
}

func TestToEvents_SingleDayStay(t *testing.T) {
	booking := &domain.Booking{
		StartDate: date(2024, 5, 1),
		EndDate:   date(2024, 5, 1),
	}

	events := ToEvents([]*domain.Booking{booking})
	require.Len(t, events, 1)

	// Однодневное представление: конец ровно на день позже начала
	assert.Equal(t, events[0].Start, date(2024, 5, 1))
	assert.Equal(t, events[0].End, events[0].Start.AddDate(0, 0, 1))
}

func TestToEvents_Colors(t *testing.T) {
	bookings := []*domain.Booking{
		{RoomType: domain.RoomStandard},
		{RoomType: domain.RoomStandard},
		{RoomType: domain.RoomType("igloo")},
	}

	events := ToEvents(bookings)
	require.Len(t, events, 3)

	assert.Equal(t, events[0].Color, events[1].Color, "color is deterministic per tier")
	assert.Equal(t, domain.FallbackColor, events[2].Color, "unknown tier gets the fallback color")
	assert.NotEmpty(t, events[2].Color)
}

func TestToEvents_BackReference(t *testing.T) {
	booking := &domain.Booking{ID: 77, CatName: "Leo"}

	events := ToEvents([]*domain.Booking{booking})
	require.Len(t, events, 1)

	assert.Same(t, booking, events[0].Booking, "event keeps the original row for in-place edit/delete")
}

func TestToEvents_Empty(t *testing.T) {
	assert.Empty(t, ToEvents(nil))
}
