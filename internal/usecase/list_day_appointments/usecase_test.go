package list_day_appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/pkg/logger"
)

type fakeClient struct {
	appointments []domain.Appointment
	err          error
	requested    time.Time
}

func (f *fakeClient) ListAppointmentsByDay(_ context.Context, day time.Time) ([]domain.Appointment, error) {
	f.requested = day
	return f.appointments, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newUseCase(client ClinicAPIClient, now time.Time) *UseCase {
	uc := NewUseCase(client, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 1, 1, hour, minute, 0, 0, time.UTC)
}

func TestExecute_Rows(t *testing.T) {
	client := &fakeClient{appointments: []domain.Appointment{{
		ID:        domain.RecordID{Table: "appointment", Key: "a1"},
		Doctor:    2,
		Patient:   domain.Patient{Name: "John Doe"},
		Type:      "quick_checkup",
		StartTime: at(9, 0),
		EndTime:   at(9, 45),
		RoomNr:    3,
	}}}
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	resp, err := newUseCase(client, at(12, 0)).Execute(context.Background(), &Request{Date: &date})
	require.NoError(t, err)

	assert.Empty(t, resp.Placeholder)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, Row{
		ID:              "a1",
		Doctor:          "Doctor 2",
		PatientName:     "John Doe",
		Type:            "Quick checkup",
		StartTime:       "09:00",
		EndTime:         "09:45",
		DurationMinutes: 45,
		RoomNr:          3,
		ValidRange:      true,
	}, resp.Rows[0])
	assert.Equal(t, date, client.requested)
}

func TestExecute_DefaultsToToday(t *testing.T) {
	client := &fakeClient{}

	resp, err := newUseCase(client, time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)).Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), resp.Date)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), resp.PrevDate)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), resp.NextDate)
}

func TestExecute_Placeholder(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeClient
	}{
		{"backend error", &fakeClient{err: errors.New("status 500")}},
		{"empty day", &fakeClient{appointments: []domain.Appointment{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newUseCase(tt.client, at(8, 0)).Execute(context.Background(), &Request{})
			require.NoError(t, err)
			assert.True(t, resp.IsEmpty())
			assert.Equal(t, NoAppointmentsText, resp.Placeholder)
		})
	}
}

func TestExecute_InvertedRangeIsFlagged(t *testing.T) {
	client := &fakeClient{appointments: []domain.Appointment{{
		ID:        domain.RecordID{Key: "a1"},
		StartTime: at(10, 0),
		EndTime:   at(9, 30),
	}}}

	resp, err := newUseCase(client, at(8, 0)).Execute(context.Background(), &Request{})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.False(t, resp.Rows[0].ValidRange)
	assert.Equal(t, -30, resp.Rows[0].DurationMinutes)
}
