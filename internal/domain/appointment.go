package domain

import (
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// AppointmentType is the enum-like appointment kind used by the backend,
// e.g. "quick_checkup"
type AppointmentType string

// Label returns the human readable form: the first underscore becomes a space
// and the first letter is capitalised ("quick_checkup" -> "Quick checkup")
func (t AppointmentType) Label() string {
	s := strings.Replace(string(t), "_", " ", 1)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Appointment represents a booked appointment as returned by the backend
type Appointment struct {
	ID        RecordID
	Doctor    int
	Patient   Patient
	Type      AppointmentType
	StartTime time.Time
	EndTime   time.Time
	RoomNr    int
}

// DurationMinutes returns the appointment length in whole minutes
func (a *Appointment) DurationMinutes() int {
	return DurationMinutes(a.StartTime, a.EndTime)
}

// HasValidRange returns true if the appointment starts before it ends.
// The backend guarantees it; the console only reports violations
func (a *Appointment) HasValidRange() bool {
	return a.StartTime.Before(a.EndTime)
}

// DurationMinutes returns (end - start) in minutes, rounded to the nearest
// minute with halves rounded up. Negative values are returned unchanged
func DurationMinutes(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Minutes() + 0.5))
}

// NewAppointment is the creation payload assembled from the appointment form
type NewAppointment struct {
	StartTime time.Time
	Type      AppointmentType
	PatientID RecordID
	Doctor    int
	RoomNr    int
}
