package clinicapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/pkg/types"
)

// envelope все JSON ответы backend обернуты в {"data": ...}
type envelope[T any] struct {
	Data T `json:"data"`
}

// recordID идентификатор записи backend:
// {"tb": "patient", "id": {"String": "abc"}} или {"tb": "patient", "id": {"Number": 7}}
// Также принимается строка "patient:abc"
type recordID struct {
	Table string
	Key   string
}

func (r *recordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		id, err := domain.ParseRecordID(s, "")
		if err != nil {
			return err
		}
		r.Table, r.Key = id.Table, id.Key
		return nil
	}

	var raw struct {
		Table string          `json:"tb"`
		ID    json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Table = raw.Table

	idData := bytes.TrimSpace(raw.ID)
	if len(idData) == 0 || bytes.Equal(idData, []byte("null")) {
		return nil
	}
	if idData[0] == '"' {
		return json.Unmarshal(idData, &r.Key)
	}

	var key struct {
		String *string      `json:"String"`
		Number *json.Number `json:"Number"`
	}
	if err := json.Unmarshal(idData, &key); err != nil {
		return err
	}
	switch {
	case key.String != nil:
		r.Key = *key.String
	case key.Number != nil:
		r.Key = key.Number.String()
	}
	return nil
}

func (r recordID) toDomain() (domain.RecordID, error) {
	id := domain.RecordID{Table: r.Table, Key: r.Key}
	if id.IsZero() {
		return domain.RecordID{}, fmt.Errorf("%w: record id without key", ErrInvalidResponse)
	}
	return id, nil
}

// patientDTO запись пациента
type patientDTO struct {
	ID              *recordID `json:"id"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phone_number"`
	InsuranceNumber *string   `json:"insurance_number"`
}

func (p *patientDTO) toDomain() (domain.Patient, error) {
	if p.ID == nil {
		return domain.Patient{}, fmt.Errorf("%w: patient without id", ErrInvalidResponse)
	}
	id, err := p.ID.toDomain()
	if err != nil {
		return domain.Patient{}, err
	}
	return domain.Patient{
		ID:              id,
		Name:            p.Name,
		PhoneNumber:     p.PhoneNumber,
		InsuranceNumber: p.InsuranceNumber,
	}, nil
}

// appointmentDTO запись приема вместе с пациентом
type appointmentDTO struct {
	ID              *recordID            `json:"id"`
	Doctor          *int                 `json:"doctor"`
	Patient         *patientDTO          `json:"patient"`
	AppointmentType string               `json:"appointment_type"`
	StartTime       *types.LocalDateTime `json:"start_time"`
	EndTime         *types.LocalDateTime `json:"end_time"`
	RoomNr          *int                 `json:"room_nr"`
}

func (a *appointmentDTO) toDomain() (domain.Appointment, error) {
	switch {
	case a.ID == nil:
		return domain.Appointment{}, fmt.Errorf("%w: appointment without id", ErrInvalidResponse)
	case a.Doctor == nil:
		return domain.Appointment{}, fmt.Errorf("%w: appointment without doctor", ErrInvalidResponse)
	case a.Patient == nil:
		return domain.Appointment{}, fmt.Errorf("%w: appointment without patient", ErrInvalidResponse)
	case a.StartTime == nil || a.EndTime == nil:
		return domain.Appointment{}, fmt.Errorf("%w: appointment without start or end time", ErrInvalidResponse)
	case a.RoomNr == nil:
		return domain.Appointment{}, fmt.Errorf("%w: appointment without room", ErrInvalidResponse)
	}

	id, err := a.ID.toDomain()
	if err != nil {
		return domain.Appointment{}, err
	}
	patient, err := a.Patient.toDomain()
	if err != nil {
		return domain.Appointment{}, err
	}

	return domain.Appointment{
		ID:        id,
		Doctor:    *a.Doctor,
		Patient:   patient,
		Type:      domain.AppointmentType(a.AppointmentType),
		StartTime: a.StartTime.Time,
		EndTime:   a.EndTime.Time,
		RoomNr:    *a.RoomNr,
	}, nil
}

// createAppointmentPayload тело POST /api/appointment
type createAppointmentPayload struct {
	StartTime       string `json:"start_time"`
	AppointmentType string `json:"appointment_type"`
	PatientID       string `json:"patient_id"`
	Doctor          int    `json:"doctor"`
	RoomNr          int    `json:"room_nr"`
}

func newCreateAppointmentPayload(a domain.NewAppointment) createAppointmentPayload {
	return createAppointmentPayload{
		StartTime:       a.StartTime.Format(domain.DateTimeFormat),
		AppointmentType: string(a.Type),
		PatientID:       a.PatientID.String(),
		Doctor:          a.Doctor,
		RoomNr:          a.RoomNr,
	}
}

// massReschedulePayload тело POST /api/appointment/mass_reschedule
type massReschedulePayload struct {
	DoctorID  int    `json:"doctor_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func newMassReschedulePayload(r domain.MassRescheduleRequest) massReschedulePayload {
	return massReschedulePayload{
		DoctorID:  r.DoctorID,
		StartDate: r.StartDate.Format(domain.DateFormat),
		EndDate:   r.EndDate.Format(domain.DateFormat),
	}
}

// patientPayload тело POST/PUT /api/patient
type patientPayload struct {
	Name            string  `json:"name"`
	PhoneNumber     string  `json:"phone_number"`
	InsuranceNumber *string `json:"insurance_number,omitempty"`
}

func newPatientPayload(p domain.PatientInput) patientPayload {
	return patientPayload{
		Name:            p.Name,
		PhoneNumber:     p.PhoneNumber,
		InsuranceNumber: p.InsuranceNumber,
	}
}

// dayFilter query параметры выборки приемов за день
type dayFilter struct {
	Filter string `url:"filter"`
	Value  string `url:"value"`
}

// parseAmount разбирает plain-text ответ конфигурационных эндпоинтов
func parseAmount(body []byte) (int, error) {
	value, err := strconv.Atoi(string(bytes.TrimSpace(body)))
	if err != nil {
		return 0, fmt.Errorf("%w: not an integer: %q", ErrInvalidResponse, string(body))
	}
	return value, nil
}
