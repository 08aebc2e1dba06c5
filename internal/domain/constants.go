package domain

// Schedule defaults
const (
	DefaultSlotStepMinutes = 30
)

// Record tables used by the backend
const (
	PatientTable     = "patient"
	AppointmentTable = "appointment"
)

// Time format constants
const (
	TimeFormat     = "15:04"               // HH:MM
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // backend timestamps, no zone
)

// DefaultAppointmentTypes is used when the config does not list any
var DefaultAppointmentTypes = []AppointmentType{
	"quick_checkup",
	"extensive_checkup",
	"surgery",
}
