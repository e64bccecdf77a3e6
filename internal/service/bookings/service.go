package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CBH-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CBH-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/CBH-BookingService/internal/pricing"
	"github.com/m04kA/CBH-BookingService/internal/service/bookings/models"
)

// Service сервис CRUD-операций над строками бронирований
// Создание идет через usecase create_booking; здесь только просмотр,
// правка и удаление отдельных строк
type Service struct {
	bookingRepo BookingRepository
	calculator  PriceCalculator
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	calculator PriceCalculator,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		calculator:  calculator,
		logger:      logger,
	}
}

// GetByID получает строку бронирования по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListByMonth возвращает все строки бронирований, проживание которых
// пересекает запрошенный месяц. Отмененные строки включаются -
// это административный список, а не витрина занятости
func (s *Service) ListByMonth(ctx context.Context, month, year int) (*models.BookingListResponse, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, fmt.Errorf("%w: month=%d year=%d", ErrInvalidInput, month, year)
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)

	bookings, err := s.bookingRepo.GetByPeriod(ctx, domain.BookingsPeriodFilter{
		From:             from,
		To:               to,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("ListByMonth: repository error for %d-%02d: %v", year, month, err)
		return nil, fmt.Errorf("%w: ListByMonth - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Update применяет частичное обновление строки бронирования
// Изменение дат перепроверяет, что ночей больше нуля, и пересчитывает
// хранимую стоимость строки по её типу номера; при прочих правках
// стоимость не пересчитывается
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Update: updating booking id=%d", id)

	if req.IsEmpty() {
		return nil, fmt.Errorf("%w: empty update", ErrInvalidInput)
	}

	var fields bookingRepo.UpdateFields

	// Статус
	if req.Status != nil {
		status, ok := models.ToDomainBookingStatus(*req.Status)
		if !ok {
			s.logger.Warn("Update: invalid status=%q for booking id=%d", *req.Status, id)
			return nil, ErrInvalidStatus
		}
		fields.Status = &status
	}

	// Заметка
	if req.Note != nil {
		if len(*req.Note) > domain.MaxNoteLength {
			return nil, fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
		}
		fields.Note = req.Note
	}

	// Правка дат требует текущей строки: валидация ночей и перерасчет цены
	if req.StartDate != nil || req.EndDate != nil {
		current, err := s.bookingRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return nil, ErrBookingNotFound
			}
			s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		startDate, endDate := current.StartDate, current.EndDate

		if req.StartDate != nil {
			parsed, err := time.Parse(domain.DateFormat, *req.StartDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid startDate: %v", ErrInvalidInput, err)
			}
			startDate = parsed
			fields.StartDate = &startDate
		}
		if req.EndDate != nil {
			parsed, err := time.Parse(domain.DateFormat, *req.EndDate)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid endDate: %v", ErrInvalidInput, err)
			}
			endDate = parsed
			fields.EndDate = &endDate
		}

		nights := pricing.Nights(startDate, endDate)
		if nights <= 0 {
			s.logger.Warn("Update: invalid date range for booking id=%d: %s -> %s",
				id, startDate.Format(domain.DateFormat), endDate.Format(domain.DateFormat))
			return nil, ErrInvalidDateRange
		}

		total := s.calculator.LineTotal(current.RoomType, nights)
		fields.TotalPrice = &total
	}

	if err := s.bookingRepo.Update(ctx, id, fields); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Update: booking id=%d not found during update", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated booking id=%d", id)
	return models.FromDomainBooking(updated), nil
}

// Delete удаляет строку бронирования (административная операция)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}
