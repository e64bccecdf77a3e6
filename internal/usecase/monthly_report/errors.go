package monthly_report

import "errors"

var (
	// ErrInvalidPeriod возвращается при некорректном месяце или годе
	ErrInvalidPeriod = errors.New("monthly_report: invalid month or year")

	// ErrStoreUnavailable возвращается при ошибке чтения хранилища
	ErrStoreUnavailable = errors.New("monthly_report: store unavailable")
)
