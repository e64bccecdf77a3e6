// Package create_booking реализует создание бронирования:
// валидация дат, разрешение клиента, расчет стоимости и пакетная
// вставка строк по одной на кошку.
//
// Запись двухфазная и намеренно нетранзакционная: upsert клиента и
// вставка строк - две последовательные операции. Если вставка строк
// упала после успешного upsert, остается строка клиента без
// бронирований. Это принятое поведение: upsert идемпотентен, и
// осиротевшая строка безвредна - следующее бронирование под тем же
// именем её переиспользует
package create_booking

import (
	"context"

	"github.com/m04kA/CBH-BookingService/internal/domain"
	"github.com/m04kA/CBH-BookingService/internal/pricing"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	resolver    CustomerResolver
	calculator  PriceCalculator
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resolver CustomerResolver,
	calculator PriceCalculator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		resolver:    resolver,
		calculator:  calculator,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%q, cats=%d, dates=%s..%s, deposited=%v",
		req.CustomerName, len(req.Cats),
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat),
		req.IsDeposited)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем диапазон дат до любой записи в хранилище
	// Ноль ночей - невалидное проживание, запись блокируется
	nights := pricing.Nights(req.StartDate, req.EndDate)
	if nights <= 0 {
		uc.logger.Warn("CreateBooking: rejected, zero nights for customer=%q", req.CustomerName)
		return nil, ErrInvalidDateRange
	}

	// 3. Разрешаем клиента (существующий id или новая строка)
	customerID, err := uc.resolver.ResolveByName(ctx, req.CustomerName)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to resolve customer %q: %v", req.CustomerName, err)
		return nil, ErrConflictResolution
	}

	// 4. Считаем итоги один раз на все строки
	summary := uc.calculator.Summary(req.Cats, req.StartDate, req.EndDate, req.IsDeposited)

	// Общий депозит делится поровну между строками, независимо от
	// индивидуальной ставки каждой кошки
	depositPerLine := summary.DepositValue / float64(len(req.Cats))

	// 5. Строим по строке на каждую кошку и вставляем одним батчем
	bookings := make([]*domain.Booking, 0, len(req.Cats))
	for _, cat := range req.Cats {
		bookings = append(bookings, &domain.Booking{
			CustomerID:   customerID,
			CustomerName: req.CustomerName,
			CatName:      cat.CatName,
			RoomType:     cat.RoomType,
			StartDate:    req.StartDate,
			EndDate:      req.EndDate,
			Status:       domain.StatusConfirmed,
			TotalPrice:   uc.calculator.LineTotal(cat.RoomType, summary.Nights),
			Deposit:      depositPerLine,
			Note:         req.Note,
		})
	}

	created, err := uc.bookingRepo.CreateBatch(ctx, bookings)
	if err != nil {
		// Клиент уже мог быть создан - см. комментарий пакета
		uc.logger.Error("CreateBooking: batch insert failed for customer id=%d: %v", customerID, err)
		return nil, ErrStoreUnavailable
	}

	ids := make([]int64, 0, len(created))
	for _, b := range created {
		ids = append(ids, b.ID)
	}

	uc.logger.Info("CreateBooking: created %d line(s) for customer id=%d, total=%.2f",
		len(ids), customerID, summary.Total)

	return &Response{
		BookingIDs:   ids,
		CustomerID:   customerID,
		Nights:       summary.Nights,
		Total:        summary.Total,
		DepositValue: summary.DepositValue,
		AmountDue:    summary.AmountDue,
		CreatedAt:    created[0].CreatedAt,
	}, nil
}
