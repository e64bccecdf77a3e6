package customers

import "errors"

var (
	// ErrNoLastStay возвращается, когда у клиента нет предыдущих бронирований
	ErrNoLastStay = errors.New("customers: no previous stay")

	// ErrStoreUnavailable возвращается при любой ошибке хранилища
	// Повторных попыток не делается - ошибка поднимается вызывающей стороне
	ErrStoreUnavailable = errors.New("customers: store unavailable")

	// ErrConflictResolution возвращается при ошибке upsert по имени
	// Обрабатывается так же, как недоступность хранилища
	ErrConflictResolution = errors.New("customers: conflict resolution failed")
)
