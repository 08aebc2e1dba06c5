package domain

import "time"

// JournalOperation names a console operation that changes backend state
type JournalOperation string

const (
	OperationCreateAppointment JournalOperation = "create_appointment"
	OperationCancelAppointment JournalOperation = "cancel_appointment"
	OperationMassReschedule    JournalOperation = "mass_reschedule"
	OperationCreatePatient     JournalOperation = "create_patient"
	OperationUpdatePatient     JournalOperation = "update_patient"
	OperationDeletePatient     JournalOperation = "delete_patient"
)

// JournalEntry is an audit record of one submitted operation
type JournalEntry struct {
	ID        int64
	Operation JournalOperation
	Target    string // record id, doctor id, etc.
	Payload   string // short human readable summary of the submitted data
	Succeeded bool
	ErrorText *string
	CreatedAt time.Time
}

// NewJournalEntry builds an entry from the outcome of an operation
func NewJournalEntry(op JournalOperation, target, payload string, opErr error) *JournalEntry {
	entry := &JournalEntry{
		Operation: op,
		Target:    target,
		Payload:   payload,
		Succeeded: opErr == nil,
	}
	if opErr != nil {
		text := opErr.Error()
		entry.ErrorText = &text
	}
	return entry
}
