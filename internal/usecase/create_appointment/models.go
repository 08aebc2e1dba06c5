package create_appointment

import "time"

// Request модель запроса на создание приема, поля формы как есть
type Request struct {
	Date            string `validate:"required,datetime=2006-01-02"` // YYYY-MM-DD
	StartTime       string `validate:"required"`                     // HH:MM или HH:MM:SS
	AppointmentType string `validate:"required"`
	PatientID       string `validate:"required"` // "patient:abc" или "abc"
	Doctor          *int   `validate:"required,min=0"`
	RoomNr          *int   `validate:"required,min=0"`
}

// Response модель ответа
type Response struct {
	Date      time.Time // День созданного приема, на него возвращается таблица
	StartTime time.Time
}
