// Package pricing реализует расчет стоимости проживания.
// Все функции тотальные: невалидные данные дают нулевые значения,
// решение о валидности принимает вызывающая сторона
package pricing

import (
	"math"
	"time"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// Summary результат расчета стоимости проживания
type Summary struct {
	Nights       int
	Total        float64
	DepositValue float64
	AmountDue    float64
}

// Calculator калькулятор стоимости с инжектированной таблицей ставок
type Calculator struct {
	rates domain.RateTable
}

// NewCalculator создает калькулятор с переданной таблицей ставок
func NewCalculator(rates domain.RateTable) *Calculator {
	return &Calculator{rates: rates}
}

// Nights возвращает количество ночей между двумя датами
// Время суток обнуляется; результат <= 0 обрезается до 0 - ноль ночей
// означает невалидное проживание, и запись должна блокироваться выше
func Nights(start, end time.Time) int {
	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	nights := int(math.Ceil(endDay.Sub(startDay).Hours() / 24))
	if nights < 0 {
		return 0
	}
	return nights
}

// Rate возвращает ставку за ночь для типа номера
// Неизвестный тип тарифицируется нулём
func (c *Calculator) Rate(room domain.RoomType) float64 {
	return c.rates.Rate(room)
}

// LineTotal возвращает стоимость одной строки: ставка * количество ночей
func (c *Calculator) LineTotal(room domain.RoomType, nights int) float64 {
	if nights <= 0 {
		return 0
	}
	return c.rates.Rate(room) * float64(nights)
}

// DepositBasis возвращает базу депозита: сумма одной ночи по каждой кошке,
// независимо от фактической длительности проживания
func (c *Calculator) DepositBasis(cats []domain.CatLine) float64 {
	var basis float64
	for _, cat := range cats {
		basis += c.rates.Rate(cat.RoomType)
	}
	return basis
}

// Summary считает итоговую стоимость проживания:
// ночи, общая сумма, депозит (если внесен) и остаток к оплате
func (c *Calculator) Summary(cats []domain.CatLine, start, end time.Time, isDeposited bool) Summary {
	nights := Nights(start, end)

	var total float64
	for _, cat := range cats {
		total += c.LineTotal(cat.RoomType, nights)
	}

	var depositValue float64
	if isDeposited {
		depositValue = c.DepositBasis(cats)
	}

	amountDue := total - depositValue
	if amountDue < 0 {
		amountDue = 0
	}

	return Summary{
		Nights:       nights,
		Total:        total,
		DepositValue: depositValue,
		AmountDue:    amountDue,
	}
}

// truncateToDay обнуляет время суток, оставляя только календарную дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
