package get_monthly_report

import (
	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// RoomStatResponse статистика одного типа номера
type RoomStatResponse struct {
	RoomType string  `json:"roomType"`
	Count    int     `json:"count"`
	Revenue  float64 `json:"revenue"`
}

// MonthlyReportResponse HTTP response model
type MonthlyReportResponse struct {
	Month         int                `json:"month"`
	Year          int                `json:"year"`
	TotalRevenue  float64            `json:"totalRevenue"`
	TotalBookings int                `json:"totalBookings"`
	RoomStats     []RoomStatResponse `json:"roomStats"`
}

// FromDomainReport конвертирует отчет домена в HTTP response
func FromDomainReport(report *domain.MonthlyReport) *MonthlyReportResponse {
	stats := make([]RoomStatResponse, 0, len(report.RoomStats))
	for _, stat := range report.RoomStats {
		stats = append(stats, RoomStatResponse{
			RoomType: string(stat.RoomType),
			Count:    stat.Count,
			Revenue:  stat.Revenue,
		})
	}

	return &MonthlyReportResponse{
		Month:         report.Month,
		Year:          report.Year,
		TotalRevenue:  report.TotalRevenue,
		TotalBookings: report.TotalBookings,
		RoomStats:     stats,
	}
}
