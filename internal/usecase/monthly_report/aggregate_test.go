package monthly_report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

func line(room domain.RoomType, start time.Time, price float64) *domain.Booking {
	return &domain.Booking{
		RoomType:   room,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, 2),
		TotalPrice: price,
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAggregate_GroupsAndSortsByRevenue(t *testing.T) {
	bookings := []*domain.Booking{
		line(domain.RoomStandard, date(2024, 5, 2), 300),
		line(domain.RoomDeluxe, date(2024, 5, 10), 350),
		line(domain.RoomStandard, date(2024, 5, 20), 600),
	}

	report := Aggregate(bookings, 5, 2024)

	assert.Equal(t, 1250.0, report.TotalRevenue)
	assert.Equal(t, 3, report.TotalBookings)

	require.Len(t, report.RoomStats, 2)
	assert.Equal(t, domain.RoomStat{RoomType: domain.RoomStandard, Count: 2, Revenue: 900}, report.RoomStats[0])
	assert.Equal(t, domain.RoomStat{RoomType: domain.RoomDeluxe, Count: 1, Revenue: 350}, report.RoomStats[1])
}

func TestAggregate_FiltersByStartDateOnly(t *testing.T) {
	bookings := []*domain.Booking{
		// Заезд в апреле, выезд в мае: в майский отчет не входит
		line(domain.RoomStandard, date(2024, 4, 30), 300),
		// Заезд в мае
		line(domain.RoomDeluxe, date(2024, 5, 1), 350),
		// Другой год
		line(domain.RoomDeluxe, date(2023, 5, 1), 999),
	}

	report := Aggregate(bookings, 5, 2024)

	assert.Equal(t, 1, report.TotalBookings)
	assert.Equal(t, 350.0, report.TotalRevenue)
}

func TestAggregate_RevenueSumMatchesTotal(t *testing.T) {
	bookings := []*domain.Booking{
		line(domain.RoomStandard, date(2024, 5, 1), 300),
		line(domain.RoomDeluxe, date(2024, 5, 2), 350),
		line(domain.RoomSuite, date(2024, 5, 3), 500),
		line(domain.RoomSuite, date(2024, 5, 4), 500),
	}

	report := Aggregate(bookings, 5, 2024)

	var sum float64
	for _, stat := range report.RoomStats {
		sum += stat.Revenue
	}
	assert.Equal(t, report.TotalRevenue, sum, "roomStats revenue must sum to totalRevenue exactly")
}

func TestAggregate_TiesKeepFirstSeenOrder(t *testing.T) {
	bookings := []*domain.Booking{
		line(domain.RoomVIP, date(2024, 5, 1), 400),
		line(domain.RoomStandard, date(2024, 5, 2), 400),
	}

	report := Aggregate(bookings, 5, 2024)

	require.Len(t, report.RoomStats, 2)
	assert.Equal(t, domain.RoomVIP, report.RoomStats[0].RoomType)
	assert.Equal(t, domain.RoomStandard, report.RoomStats[1].RoomType)
}

func TestAggregate_EmptyMonth(t *testing.T) {
	report := Aggregate(nil, 5, 2024)

	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Equal(t, 0, report.TotalBookings)
	assert.Empty(t, report.RoomStats)
}
