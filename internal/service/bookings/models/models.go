package models

import (
	"time"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// Request модели

// UpdateBookingRequest запрос на частичное обновление бронирования
// nil-поля не изменяются
type UpdateBookingRequest struct {
	Status    *string `json:"status,omitempty"`
	Note      *string `json:"note,omitempty"`
	StartDate *string `json:"startDate,omitempty"` // "2024-05-01"
	EndDate   *string `json:"endDate,omitempty"`   // "2024-05-03"
}

// IsEmpty возвращает true, если запрос не меняет ни одного поля
func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.Status == nil && r.Note == nil && r.StartDate == nil && r.EndDate == nil
}

// Response модели

// BookingResponse ответ с данными одной строки бронирования
type BookingResponse struct {
	ID           int64   `json:"id"`
	CustomerID   int64   `json:"customerId"`
	CustomerName string  `json:"customerName"`
	CatName      string  `json:"catName"`
	RoomType     string  `json:"roomType"`
	StartDate    string  `json:"startDate"` // "2024-05-01"
	EndDate      string  `json:"endDate"`   // "2024-05-03" (включительно)
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"totalPrice"`
	Deposit      float64 `json:"deposit"`
	Note         *string `json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком строк бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		CustomerID:   b.CustomerID,
		CustomerName: b.CustomerName,
		CatName:      b.CatName,
		RoomType:     string(b.RoomType),
		StartDate:    b.StartDate.Format(domain.DateFormat),
		EndDate:      b.EndDate.Format(domain.DateFormat),
		Status:       string(b.Status),
		TotalPrice:   b.TotalPrice,
		Deposit:      b.Deposit,
		Note:         b.Note,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if b := FromDomainBooking(booking); b != nil {
			resp.Bookings = append(resp.Bookings, *b)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, bool) {
	s := domain.BookingStatus(status)
	return s, s.IsValid()
}
