package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/CBH-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/CBH-BookingService/internal/infra/storage/booking"
)

// Service сервис разрешения клиентов: подсказки, идемпотентный upsert
// по имени и загрузка последнего проживания
type Service struct {
	customerRepo CustomerRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	customerRepo CustomerRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// Suggest возвращает подсказки по подстроке имени (case-insensitive)
// Пустой или пробельный запрос дает пустой результат без похода в хранилище
func (s *Service) Suggest(ctx context.Context, query string) ([]domain.CustomerSuggestion, error) {
	if strings.TrimSpace(query) == "" {
		return []domain.CustomerSuggestion{}, nil
	}

	suggestions, err := s.customerRepo.SuggestByName(ctx, query, domain.SuggestLimit)
	if err != nil {
		s.logger.Error("Suggest: repository error for query=%q: %v", query, err)
		return nil, fmt.Errorf("%w: Suggest - repository error: %v", ErrStoreUnavailable, err)
	}

	return suggestions, nil
}

// ResolveByName идемпотентно разрешает клиента по имени:
// возвращает id существующей строки при точном совпадении имени,
// иначе создает нового клиента. Конкурентные вызовы с одинаковым именем
// разрешаются хранилищем - выживает ровно одна строка
func (s *Service) ResolveByName(ctx context.Context, name string) (int64, error) {
	customer, err := s.customerRepo.Upsert(ctx, name)
	if err != nil {
		s.logger.Error("ResolveByName: upsert failed for name=%q: %v", name, err)
		return 0, fmt.Errorf("%w: ResolveByName - upsert: %v", ErrConflictResolution, err)
	}

	s.logger.Info("ResolveByName: resolved name=%q to customer id=%d", name, customer.ID)
	return customer.ID, nil
}

// LoadLastStay возвращает состав кошек и тип номера последнего бронирования
// клиента для предзаполнения формы. Возвращает ErrNoLastStay, если
// предыдущих бронирований нет.
// Разбор хранимого cat_names (возможно, склеенного запятыми) - зона
// ответственности этого компонента, не вызывающей стороны
func (s *Service) LoadLastStay(ctx context.Context, name string) (*domain.LastStay, error) {
	last, err := s.bookingRepo.GetLastByCustomerName(ctx, name)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrNoLastStay
		}
		s.logger.Error("LoadLastStay: repository error for name=%q: %v", name, err)
		return nil, fmt.Errorf("%w: LoadLastStay - repository error: %v", ErrStoreUnavailable, err)
	}

	return &domain.LastStay{
		CatNames: parseCatNames(last.CatName),
		RoomType: last.RoomType,
	}, nil
}

// parseCatNames разбирает склеенный запятыми список имен на отдельные
// имена с обрезкой пробелов. Строки без запятой дают список из одного имени
func parseCatNames(raw string) []string {
	parts := strings.Split(raw, ",")

	names := make([]string, 0, len(parts))
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}

	return names
}
