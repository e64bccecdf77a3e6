package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CBH-BookingService/internal/domain"
	"github.com/m04kA/CBH-BookingService/internal/pricing"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeBookingRepo запоминает вставленный батч
type fakeBookingRepo struct {
	inserted []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) CreateBatch(_ context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i, b := range bookings {
		b.ID = int64(i + 1)
		b.CreatedAt = time.Now()
	}
	f.inserted = bookings
	return bookings, nil
}

// fakeResolver считает обращения к upsert клиента
type fakeResolver struct {
	calls int
	id    int64
}

func (f *fakeResolver) ResolveByName(_ context.Context, _ string) (int64, error) {
	f.calls++
	return f.id, nil
}

var testRates = domain.RateTable{
	domain.RoomStandard: 300,
	domain.RoomDeluxe:   350,
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(repo *fakeBookingRepo, resolver *fakeResolver) *UseCase {
	return NewUseCase(repo, resolver, pricing.NewCalculator(testRates), nopLogger{})
}

func validRequest() *Request {
	return &Request{
		CustomerName: "Анна Петрова",
		Cats: []domain.CatLine{
			{CatName: "Mochi", RoomType: domain.RoomStandard},
			{CatName: "Leo", RoomType: domain.RoomDeluxe},
		},
		StartDate: date(2024, 5, 1),
		EndDate:   date(2024, 5, 3),
	}
}

func TestExecute_CreatesLinePerCat(t *testing.T) {
	repo := &fakeBookingRepo{}
	resolver := &fakeResolver{id: 42}

	resp, err := newTestUseCase(repo, resolver).Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, repo.inserted, 2)
	assert.Equal(t, []int64{1, 2}, resp.BookingIDs)
	assert.Equal(t, int64(42), resp.CustomerID)
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, 1300.0, resp.Total) // 300*2 + 350*2
	assert.Equal(t, 1300.0, resp.AmountDue)

	for _, line := range repo.inserted {
		assert.Equal(t, int64(42), line.CustomerID)
		assert.Equal(t, "Анна Петрова", line.CustomerName, "customer name is snapshotted onto every line")
		assert.Equal(t, date(2024, 5, 1), line.StartDate)
		assert.Equal(t, date(2024, 5, 3), line.EndDate)
		assert.Equal(t, domain.StatusConfirmed, line.Status)
		assert.Equal(t, 0.0, line.Deposit)
	}

	assert.Equal(t, 600.0, repo.inserted[0].TotalPrice)
	assert.Equal(t, 700.0, repo.inserted[1].TotalPrice)
}

func TestExecute_DepositSplitEqually(t *testing.T) {
	repo := &fakeBookingRepo{}
	req := validRequest()
	req.IsDeposited = true

	resp, err := newTestUseCase(repo, &fakeResolver{id: 1}).Execute(context.Background(), req)
	require.NoError(t, err)

	// База депозита: одна ночь с каждой кошки (300 + 350),
	// делится поровну между строками независимо от их ставок
	assert.Equal(t, 650.0, resp.DepositValue)
	assert.Equal(t, 650.0, resp.AmountDue)
	assert.Equal(t, 325.0, repo.inserted[0].Deposit)
	assert.Equal(t, 325.0, repo.inserted[1].Deposit)
}

func TestExecute_ZeroNightsBlocksAllWrites(t *testing.T) {
	repo := &fakeBookingRepo{}
	resolver := &fakeResolver{id: 1}
	req := validRequest()
	req.EndDate = req.StartDate

	_, err := newTestUseCase(repo, resolver).Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDateRange)
	assert.Equal(t, 0, resolver.calls, "customer upsert must not happen for an invalid range")
	assert.Nil(t, repo.inserted)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty customer name", func(r *Request) { r.CustomerName = "  " }},
		{"no cats", func(r *Request) { r.Cats = nil }},
		{"blank cat name", func(r *Request) { r.Cats[0].CatName = "" }},
		{"unknown room type", func(r *Request) { r.Cats[0].RoomType = "igloo" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeBookingRepo{}
			req := validRequest()
			tt.mutate(req)

			_, err := newTestUseCase(repo, &fakeResolver{id: 1}).Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.inserted)
		})
	}
}

func TestExecute_InsertFailureSurfacesStoreError(t *testing.T) {
	repo := &fakeBookingRepo{err: assert.AnError}
	resolver := &fakeResolver{id: 7}

	_, err := newTestUseCase(repo, resolver).Execute(context.Background(), validRequest())

	// Клиент уже разрешён - принятая двухфазная несогласованность
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Equal(t, 1, resolver.calls)
}
