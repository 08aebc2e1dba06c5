package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrBackend возвращается, когда backend отклонил прием (например, пересечение) или недоступен.
	// Цепочка сохраняет исходную ошибку клиента с текстом сервера
	ErrBackend = errors.New("create_appointment: backend request failed")
)
