package create_booking

import (
	"time"

	"github.com/m04kA/CBH-BookingService/internal/domain"
	createBooking "github.com/m04kA/CBH-BookingService/internal/usecase/create_booking"
)

// CatRequest одна кошка в HTTP запросе
type CatRequest struct {
	CatName  string `json:"catName"`
	RoomType string `json:"roomType"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName string       `json:"customerName"`
	Cats         []CatRequest `json:"cats"`
	StartDate    string       `json:"startDate"` // "2024-05-01"
	EndDate      string       `json:"endDate"`   // "2024-05-03"
	IsDeposited  bool         `json:"isDeposited"`
	Note         *string      `json:"note,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	BookingIDs   []int64 `json:"bookingIds"`
	CustomerID   int64   `json:"customerId"`
	Nights       int     `json:"nights"`
	Total        float64 `json:"total"`
	DepositValue float64 `json:"depositValue"`
	AmountDue    float64 `json:"amountDue"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	cats := make([]domain.CatLine, 0, len(r.Cats))
	for _, cat := range r.Cats {
		cats = append(cats, domain.CatLine{
			CatName:  cat.CatName,
			RoomType: domain.RoomType(cat.RoomType),
		})
	}

	return &createBooking.Request{
		CustomerName: r.CustomerName,
		Cats:         cats,
		StartDate:    startDate,
		EndDate:      endDate,
		IsDeposited:  r.IsDeposited,
		Note:         r.Note,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingIDs:   resp.BookingIDs,
		CustomerID:   resp.CustomerID,
		Nights:       resp.Nights,
		Total:        resp.Total,
		DepositValue: resp.DepositValue,
		AmountDue:    resp.AmountDue,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
