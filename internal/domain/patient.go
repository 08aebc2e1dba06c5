package domain

import (
	"fmt"
	"strings"
)

// RecordID is the backend record identifier, rendered as "table:key"
type RecordID struct {
	Table string
	Key   string
}

// String returns "table:key", or just the key when the table is unknown
func (id RecordID) String() string {
	if id.Table == "" {
		return id.Key
	}
	return id.Table + ":" + id.Key
}

// IsZero returns true if the key is missing
func (id RecordID) IsZero() bool {
	return id.Key == ""
}

// ParseRecordID accepts "table:key" or a bare key. A bare key gets defaultTable
func ParseRecordID(s, defaultTable string) (RecordID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RecordID{}, fmt.Errorf("empty record id")
	}

	table, key, found := strings.Cut(s, ":")
	if !found {
		return RecordID{Table: defaultTable, Key: s}, nil
	}
	if table == "" || key == "" {
		return RecordID{}, fmt.Errorf("malformed record id %q", s)
	}
	return RecordID{Table: table, Key: key}, nil
}

// Patient represents a clinic patient
type Patient struct {
	ID              RecordID
	Name            string
	PhoneNumber     string
	InsuranceNumber *string
}

// PatientInput holds the editable patient fields
type PatientInput struct {
	Name            string
	PhoneNumber     string
	InsuranceNumber *string
}
