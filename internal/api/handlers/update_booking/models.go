package update_booking

import (
	"github.com/m04kA/CBH-BookingService/internal/service/bookings/models"
)

// UpdateBookingRequest HTTP request model, все поля опциональны
type UpdateBookingRequest struct {
	Status    *string `json:"status,omitempty"`
	Note      *string `json:"note,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateBookingRequest) ToServiceRequest() *models.UpdateBookingRequest {
	return &models.UpdateBookingRequest{
		Status:    r.Status,
		Note:      r.Note,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}
