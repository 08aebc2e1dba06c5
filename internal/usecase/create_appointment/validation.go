package create_appointment

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/pkg/types"
)

// validateRequest проверяет обязательные поля и форматы формы
func validateRequest(validate *validator.Validate, req *Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// buildAppointment собирает запрос на создание приема из полей формы
// start_time = дата + "T" + HH:MM:SS, пациент приводится к виду patient:<key>
func buildAppointment(req *Request, allowedTypes []domain.AppointmentType) (domain.NewAppointment, error) {
	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return domain.NewAppointment{}, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, req.Date)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return domain.NewAppointment{}, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	start, err := startTime.OnDate(date)
	if err != nil {
		return domain.NewAppointment{}, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	patientID, err := domain.ParseRecordID(req.PatientID, domain.PatientTable)
	if err != nil {
		return domain.NewAppointment{}, fmt.Errorf("%w: invalid patient: %v", ErrInvalidInput, err)
	}

	appointmentType := domain.AppointmentType(req.AppointmentType)
	if !isAllowedType(appointmentType, allowedTypes) {
		return domain.NewAppointment{}, fmt.Errorf("%w: unknown appointment type %q", ErrInvalidInput, req.AppointmentType)
	}

	return domain.NewAppointment{
		StartTime: start,
		Type:      appointmentType,
		PatientID: patientID,
		Doctor:    *req.Doctor,
		RoomNr:    *req.RoomNr,
	}, nil
}

func isAllowedType(t domain.AppointmentType, allowed []domain.AppointmentType) bool {
	// Пустой список - без ограничений
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == t {
			return true
		}
	}
	return false
}
