package prepare_appointment_form

import "errors"

var (
	// ErrInvalidSchedule возвращается, когда рабочие интервалы или шаг некорректны
	ErrInvalidSchedule = errors.New("prepare_appointment_form: invalid schedule")
)

// Тексты предупреждений, которые показываются над формой
const (
	AlertLimitsUnavailable   = "Failed to load doctor and room amounts"
	AlertPatientsUnavailable = "Failed to load patients"
)
