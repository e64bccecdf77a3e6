package monthly_report

import (
	"sort"
	"time"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// Aggregate считает помесячную статистику выручки по типам номеров.
// Чистая функция без побочных эффектов, пересчитывается в любой момент
// по полному набору строк.
//
// Строка попадает в отчет, если месяц и год её даты заезда совпадают
// с запрошенными (месяц 1-индексный). Проживания, пересекающие границу
// месяцев, не делятся - классификация только по дате заезда. Каждая
// строка-кошка считается отдельным бронированием
func Aggregate(bookings []*domain.Booking, month, year int) *domain.MonthlyReport {
	report := &domain.MonthlyReport{
		Month:     month,
		Year:      year,
		RoomStats: make([]domain.RoomStat, 0),
	}

	// Группируем по типу номера, сохраняя порядок первого появления
	index := make(map[domain.RoomType]int)

	for _, b := range bookings {
		if b.StartDate.Month() != time.Month(month) || b.StartDate.Year() != year {
			continue
		}

		report.TotalBookings++
		report.TotalRevenue += b.TotalPrice

		i, ok := index[b.RoomType]
		if !ok {
			i = len(report.RoomStats)
			index[b.RoomType] = i
			report.RoomStats = append(report.RoomStats, domain.RoomStat{RoomType: b.RoomType})
		}
		report.RoomStats[i].Count++
		report.RoomStats[i].Revenue += b.TotalPrice
	}

	// По убыванию выручки; при равенстве сохраняется порядок
	// первого появления
	sort.SliceStable(report.RoomStats, func(i, j int) bool {
		return report.RoomStats[i].Revenue > report.RoomStats[j].Revenue
	})

	return report
}
