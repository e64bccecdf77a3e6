package create_booking

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда выезд не позже заезда
	// (ноль ночей). Проверяется до любой записи в хранилище
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrConflictResolution возвращается при ошибке upsert клиента
	ErrConflictResolution = errors.New("create_booking: customer conflict resolution failed")

	// ErrStoreUnavailable возвращается при ошибке записи бронирований
	// Повторных попыток не делается
	ErrStoreUnavailable = errors.New("create_booking: store unavailable")
)
