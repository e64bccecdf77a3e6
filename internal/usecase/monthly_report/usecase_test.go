package monthly_report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakePeriodRepo воспроизводит поведение хранилища: отмененные строки
// отдаются только при IncludeCancelled
type fakePeriodRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsPeriodFilter
}

func (f *fakePeriodRepo) GetByPeriod(_ context.Context, filter domain.BookingsPeriodFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter

	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		if !filter.IncludeCancelled && b.Status == domain.StatusCancelled {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func mayBooking(id int64, room domain.RoomType, status domain.BookingStatus, price float64) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		RoomType:   room,
		StartDate:  time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC),
		Status:     status,
		TotalPrice: price,
	}
}

func TestExecuteCountsCancelledLines(t *testing.T) {
	repo := &fakePeriodRepo{bookings: []*domain.Booking{
		mayBooking(1, domain.RoomStandard, domain.StatusConfirmed, 300),
		mayBooking(2, domain.RoomVIP, domain.StatusCancelled, 600),
	}}
	uc := NewUseCase(repo, nopLogger{})

	report, err := uc.Execute(context.Background(), &Request{Month: 5, Year: 2024})
	require.NoError(t, err)

	// Попадание в отчет определяется только датой заезда,
	// статус строки роли не играет
	assert.True(t, repo.lastFilter.IncludeCancelled)
	assert.Equal(t, 2, report.TotalBookings)
	assert.Equal(t, 900.0, report.TotalRevenue)
}

func TestExecuteRejectsInvalidPeriod(t *testing.T) {
	uc := NewUseCase(&fakePeriodRepo{}, nopLogger{})

	for _, req := range []*Request{
		{Month: 0, Year: 2024},
		{Month: 13, Year: 2024},
		{Month: 5, Year: 0},
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	}
}
