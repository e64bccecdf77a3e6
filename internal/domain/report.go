package domain

// RoomStat aggregated revenue of one room tier within a month
type RoomStat struct {
	RoomType RoomType
	Count    int
	Revenue  float64
}

// MonthlyReport per-room-type revenue statistics for one month
// Each per-cat line counts as one booking; roomStats revenue sums to
// TotalRevenue exactly
type MonthlyReport struct {
	Month         int // 1-indexed
	Year          int
	TotalRevenue  float64
	TotalBookings int
	RoomStats     []RoomStat
}
