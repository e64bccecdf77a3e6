package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

var testRates = domain.RateTable{
	domain.RoomStandard: 300,
	domain.RoomDeluxe:   350,
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"two nights", date(2024, 5, 1), date(2024, 5, 3), 2},
		{"one night", date(2024, 5, 1), date(2024, 5, 2), 1},
		{"same day", date(2024, 5, 1), date(2024, 5, 1), 0},
		{"end before start", date(2024, 5, 3), date(2024, 5, 1), 0},
		{"month boundary", date(2024, 4, 29), date(2024, 5, 2), 3},
		{"time of day ignored", time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC), time.Date(2024, 5, 3, 1, 0, 0, 0, time.UTC), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.start, tt.end))
		})
	}
}

func TestLineTotal(t *testing.T) {
	calc := NewCalculator(testRates)

	assert.Equal(t, 600.0, calc.LineTotal(domain.RoomStandard, 2))
	assert.Equal(t, 0.0, calc.LineTotal(domain.RoomStandard, 0))
	assert.Equal(t, 0.0, calc.LineTotal(domain.RoomStandard, -1))

	// Неизвестный тип номера тарифицируется нулём, без ошибки
	assert.Equal(t, 0.0, calc.LineTotal(domain.RoomType("igloo"), 5))
}

func TestDepositBasis(t *testing.T) {
	calc := NewCalculator(testRates)

	cats := []domain.CatLine{
		{CatName: "Mochi", RoomType: domain.RoomStandard},
		{CatName: "Leo", RoomType: domain.RoomDeluxe},
	}

	// Одна ночь с каждой кошки, независимо от длительности проживания
	assert.Equal(t, 650.0, calc.DepositBasis(cats))
	assert.Equal(t, 0.0, calc.DepositBasis(nil))
}

func TestSummary(t *testing.T) {
	calc := NewCalculator(testRates)

	cats := []domain.CatLine{
		{CatName: "Mochi", RoomType: domain.RoomStandard},
		{CatName: "Leo", RoomType: domain.RoomDeluxe},
	}
	start := date(2024, 5, 1)
	end := date(2024, 5, 3)

	t.Run("without deposit", func(t *testing.T) {
		s := calc.Summary(cats, start, end, false)

		assert.Equal(t, 2, s.Nights)
		assert.Equal(t, 1300.0, s.Total) // 300*2 + 350*2
		assert.Equal(t, 0.0, s.DepositValue)
		assert.Equal(t, 1300.0, s.AmountDue)
	})

	t.Run("with deposit", func(t *testing.T) {
		s := calc.Summary(cats, start, end, true)

		assert.Equal(t, 650.0, s.DepositValue)
		assert.Equal(t, 650.0, s.AmountDue)
	})

	t.Run("deposit exceeds total", func(t *testing.T) {
		// Одна ночь: депозит (650) больше суммы за одну ночь? Нет - равен.
		// Берём нулевое проживание: total = 0, депозит всё ещё 650
		s := calc.Summary(cats, start, start, true)

		assert.Equal(t, 0, s.Nights)
		assert.Equal(t, 0.0, s.Total)
		assert.Equal(t, 650.0, s.DepositValue)
		assert.Equal(t, 0.0, s.AmountDue, "amountDue is clamped at zero")
	})

	t.Run("unknown tier contributes zero", func(t *testing.T) {
		mixed := append(cats, domain.CatLine{CatName: "Ghost", RoomType: domain.RoomType("igloo")})
		s := calc.Summary(mixed, start, end, false)

		assert.Equal(t, 1300.0, s.Total)
	})
}
