package mass_reschedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("mass_reschedule: invalid input data")

	// ErrInvalidDateRange возвращается, когда начало диапазона позже конца
	ErrInvalidDateRange = errors.New("mass_reschedule: start date is after end date")

	// ErrBackend возвращается, когда backend отклонил перенос или недоступен
	ErrBackend = errors.New("mass_reschedule: backend request failed")
)
