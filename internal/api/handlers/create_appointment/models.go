package create_appointment

import (
	createAppointment "github.com/m04kA/SMC-ClinicConsole/internal/usecase/create_appointment"
)

// CreateAppointmentForm поля формы создания приема
type CreateAppointmentForm struct {
	Date            string `schema:"date"`
	StartTime       string `schema:"start_time"`
	AppointmentType string `schema:"appointment_type"`
	PatientID       string `schema:"patient_id"`
	Doctor          *int   `schema:"doctor"`
	RoomNr          *int   `schema:"room_nr"`
}

// ToUseCaseRequest конвертирует форму в модель use case
func (f *CreateAppointmentForm) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		Date:            f.Date,
		StartTime:       f.StartTime,
		AppointmentType: f.AppointmentType,
		PatientID:       f.PatientID,
		Doctor:          f.Doctor,
		RoomNr:          f.RoomNr,
	}
}
