package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-ClinicConsole/pkg/logger"
)

type fakeClient struct {
	created []domain.NewAppointment
	err     error
}

func (f *fakeClient) CreateAppointment(_ context.Context, appointment domain.NewAppointment) error {
	f.created = append(f.created, appointment)
	return f.err
}

type fakeJournal struct {
	entries []*domain.JournalEntry
	err     error
}

func (f *fakeJournal) Record(_ context.Context, entry *domain.JournalEntry) error {
	f.entries = append(f.entries, entry)
	return f.err
}

func intPtr(v int) *int { return &v }

func validRequest() *Request {
	return &Request{
		Date:            "2024-01-01",
		StartTime:       "08:30:00",
		AppointmentType: "quick_checkup",
		PatientID:       "patient:p1",
		Doctor:          intPtr(0),
		RoomNr:          intPtr(4),
	}
}

func TestExecute(t *testing.T) {
	client := &fakeClient{}
	journal := &fakeJournal{}
	uc := NewUseCase(client, journal, domain.DefaultAppointmentTypes, logger.NewNop())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, client.created, 1)
	assert.Equal(t, domain.NewAppointment{
		StartTime: time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC),
		Type:      "quick_checkup",
		PatientID: domain.RecordID{Table: "patient", Key: "p1"},
		Doctor:    0,
		RoomNr:    4,
	}, client.created[0])
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), resp.Date)

	require.Len(t, journal.entries, 1)
	assert.Equal(t, domain.OperationCreateAppointment, journal.entries[0].Operation)
	assert.Equal(t, "patient:p1", journal.entries[0].Target)
	assert.True(t, journal.entries[0].Succeeded)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing date", func(r *Request) { r.Date = "" }},
		{"malformed date", func(r *Request) { r.Date = "01.01.2024" }},
		{"missing time", func(r *Request) { r.StartTime = "" }},
		{"malformed time", func(r *Request) { r.StartTime = "25:00" }},
		{"missing type", func(r *Request) { r.AppointmentType = "" }},
		{"unknown type", func(r *Request) { r.AppointmentType = "massage" }},
		{"missing patient", func(r *Request) { r.PatientID = "" }},
		{"malformed patient", func(r *Request) { r.PatientID = "patient:" }},
		{"missing doctor", func(r *Request) { r.Doctor = nil }},
		{"negative doctor", func(r *Request) { r.Doctor = intPtr(-1) }},
		{"missing room", func(r *Request) { r.RoomNr = nil }},
		{"negative room", func(r *Request) { r.RoomNr = intPtr(-2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			journal := &fakeJournal{}
			uc := NewUseCase(client, journal, domain.DefaultAppointmentTypes, logger.NewNop())

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, client.created)
			assert.Empty(t, journal.entries)
		})
	}
}

func TestExecute_BareKeyAndShortTime(t *testing.T) {
	client := &fakeClient{}
	uc := NewUseCase(client, &fakeJournal{}, nil, logger.NewNop())

	req := validRequest()
	req.PatientID = "p1"
	req.StartTime = "14:00"
	req.AppointmentType = "anything_goes"

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "patient:p1", client.created[0].PatientID.String())
	assert.Equal(t, 14, client.created[0].StartTime.Hour())
}

func TestExecute_BackendRejects(t *testing.T) {
	apiErr := &clinicapi.APIError{StatusCode: 400, Body: "Appointment overlaps with another appointment"}
	journal := &fakeJournal{err: errors.New("journal down")}
	uc := NewUseCase(&fakeClient{err: apiErr}, journal, domain.DefaultAppointmentTypes, logger.NewNop())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBackend)
	assert.Equal(t, "Appointment overlaps with another appointment", clinicapi.ServerMessage(err))

	require.Len(t, journal.entries, 1)
	assert.False(t, journal.entries[0].Succeeded)
}
