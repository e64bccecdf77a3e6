package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/CBH-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.Cats) == 0 {
		return fmt.Errorf("%w: at least one cat is required", ErrInvalidInput)
	}
	if len(req.Cats) > domain.MaxCatsPerBooking {
		return fmt.Errorf("%w: at most %d cats per booking", ErrInvalidInput, domain.MaxCatsPerBooking)
	}

	for i, cat := range req.Cats {
		if strings.TrimSpace(cat.CatName) == "" {
			return fmt.Errorf("%w: cats[%d].catName is required", ErrInvalidInput, i)
		}
		if !cat.RoomType.IsValid() {
			return fmt.Errorf("%w: cats[%d].roomType %q is unknown", ErrInvalidInput, i, cat.RoomType)
		}
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}
