package get_last_stay

import (
	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// LastStayResponse HTTP response model
type LastStayResponse struct {
	CatNames []string `json:"catNames"`
	RoomType string   `json:"roomType"`
}

// FromDomainLastStay конвертирует последнее проживание в HTTP response
func FromDomainLastStay(stay *domain.LastStay) *LastStayResponse {
	return &LastStayResponse{
		CatNames: stay.CatNames,
		RoomType: string(stay.RoomType),
	}
}
