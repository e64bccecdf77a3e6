package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed  BookingStatus = "confirmed"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// AllStatuses список всех статусов бронирования
var AllStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCancelled,
}

// IsValid returns true if the status is one of the known values
func (s BookingStatus) IsValid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Booking represents one per-cat line item of a reservation
// A multi-cat reservation creates one row per cat, all sharing the same
// customer, dates and an equal split of the aggregate deposit
type Booking struct {
	ID         int64
	CustomerID int64

	// Denormalized snapshot of the customer name at booking time,
	// intentionally not re-synced if the customer is later renamed
	CustomerName string

	CatName   string
	RoomType  RoomType
	StartDate time.Time // calendar date, time-of-day zeroed
	EndDate   time.Time // inclusive in storage, exclusive in calendar rendering
	Status    BookingStatus

	// Computed at creation time, stored, not recomputed on read
	TotalPrice float64
	Deposit    float64

	Note *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CatLine одна кошка в запросе на бронирование
type CatLine struct {
	CatName  string
	RoomType RoomType
}

// BookingsPeriodFilter фильтр для выборки бронирований за период
type BookingsPeriodFilter struct {
	// Период [From, To] по датам заезда/выезда: строка попадает в выборку,
	// если её проживание пересекает период
	From time.Time
	To   time.Time

	// Включать ли отмененные бронирования
	IncludeCancelled bool
}
