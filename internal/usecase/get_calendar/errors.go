package get_calendar

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном месяце или годе
	ErrInvalidPeriod = errors.New("get_calendar: invalid month or year")

	// ErrStoreUnavailable возвращается при ошибке чтения хранилища
	ErrStoreUnavailable = errors.New("get_calendar: store unavailable")
)
