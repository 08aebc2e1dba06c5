package limits

import "errors"

var (
	// ErrDoctorAmount возвращается, когда не удалось получить количество врачей
	ErrDoctorAmount = errors.New("limits: failed to get doctor amount")

	// ErrRoomAmount возвращается, когда не удалось получить количество кабинетов
	ErrRoomAmount = errors.New("limits: failed to get room amount")

	// ErrInvalidAmount возвращается, когда backend вернул отрицательное значение
	ErrInvalidAmount = errors.New("limits: invalid amount")
)
