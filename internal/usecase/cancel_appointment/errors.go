package cancel_appointment

import "errors"

var (
	// ErrInvalidInput возвращается, когда не указан прием для отмены
	ErrInvalidInput = errors.New("cancel_appointment: invalid input data")

	// ErrAppointmentNotFound возвращается, когда прием уже удален или не существовал
	ErrAppointmentNotFound = errors.New("cancel_appointment: appointment not found")

	// ErrBackend возвращается при остальных ошибках backend
	ErrBackend = errors.New("cancel_appointment: backend request failed")
)
