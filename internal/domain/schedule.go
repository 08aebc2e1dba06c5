package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicConsole/pkg/types"
)

// ErrEmptyInterval is returned when a working interval misses its start or end
var ErrEmptyInterval = errors.New("working interval: start and end are required")

// TimeSlot is a working interval of the day, half-open [Start, End)
type TimeSlot struct {
	Start types.TimeString
	End   types.TimeString
}

// Validate returns an error if the interval is malformed or empty
func (s TimeSlot) Validate() error {
	if s.Start.IsZero() || s.End.IsZero() {
		return ErrEmptyInterval
	}
	if err := s.Start.Validate(); err != nil {
		return err
	}
	if err := s.End.Validate(); err != nil {
		return err
	}
	if !s.Start.IsBefore(s.End) {
		return fmt.Errorf("working interval %s-%s: start must be before end", s.Start, s.End)
	}
	return nil
}

// Contains reports whether t lies within [Start, End)
func (s TimeSlot) Contains(t types.TimeString) bool {
	return !t.IsBefore(s.Start) && t.IsBefore(s.End)
}

// DefaultWorkingDay returns the two working intervals of the clinic day
func DefaultWorkingDay() []TimeSlot {
	return []TimeSlot{
		{Start: "08:00", End: "13:00"},
		{Start: "14:00", End: "17:00"},
	}
}

// MassRescheduleRequest moves all appointments of a doctor within the
// inclusive date range. The backend decides where they go
type MassRescheduleRequest struct {
	DoctorID  int
	StartDate time.Time
	EndDate   time.Time
}
