package patients

import "errors"

var (
	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("patients: patient not found")

	// ErrInvalidInput возвращается при некорректных данных формы
	ErrInvalidInput = errors.New("patients: invalid input data")

	// ErrBackend возвращается, когда backend отклонил запрос или недоступен.
	// Цепочка сохраняет исходную ошибку клиента
	ErrBackend = errors.New("patients: backend request failed")
)
