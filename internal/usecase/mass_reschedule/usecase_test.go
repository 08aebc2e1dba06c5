package mass_reschedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-ClinicConsole/pkg/logger"
)

type fakeClient struct {
	requests []domain.MassRescheduleRequest
	err      error
}

func (f *fakeClient) MassReschedule(_ context.Context, req domain.MassRescheduleRequest) error {
	f.requests = append(f.requests, req)
	return f.err
}

type fakeJournal struct {
	entries []*domain.JournalEntry
}

func (f *fakeJournal) Record(_ context.Context, entry *domain.JournalEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func intPtr(v int) *int { return &v }

func TestExecute(t *testing.T) {
	client := &fakeClient{}
	journal := &fakeJournal{}
	uc := NewUseCase(client, journal, logger.NewNop())

	err := uc.Execute(context.Background(), &Request{DoctorID: intPtr(1), StartDate: "2021-01-01", EndDate: "2021-01-31"})
	require.NoError(t, err)

	assert.Equal(t, []domain.MassRescheduleRequest{{
		DoctorID:  1,
		StartDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC),
	}}, client.requests)

	require.Len(t, journal.entries, 1)
	assert.Equal(t, "doctor:1", journal.entries[0].Target)
	assert.Equal(t, "2021-01-01..2021-01-31", journal.entries[0].Payload)
}

func TestExecute_SameDay(t *testing.T) {
	client := &fakeClient{}
	uc := NewUseCase(client, &fakeJournal{}, logger.NewNop())

	require.NoError(t, uc.Execute(context.Background(), &Request{DoctorID: intPtr(0), StartDate: "2021-01-01", EndDate: "2021-01-01"}))
	assert.Len(t, client.requests, 1)
}

func TestExecute_RejectedBeforeSending(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"start after end", &Request{DoctorID: intPtr(1), StartDate: "2021-02-01", EndDate: "2021-01-31"}, ErrInvalidDateRange},
		{"missing doctor", &Request{StartDate: "2021-01-01", EndDate: "2021-01-31"}, ErrInvalidInput},
		{"negative doctor", &Request{DoctorID: intPtr(-1), StartDate: "2021-01-01", EndDate: "2021-01-31"}, ErrInvalidInput},
		{"missing start", &Request{DoctorID: intPtr(1), EndDate: "2021-01-31"}, ErrInvalidInput},
		{"malformed end", &Request{DoctorID: intPtr(1), StartDate: "2021-01-01", EndDate: "31/01/2021"}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			journal := &fakeJournal{}
			uc := NewUseCase(client, journal, logger.NewNop())

			err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, client.requests)
			assert.Empty(t, journal.entries)
		})
	}
}

func TestExecute_BackendError(t *testing.T) {
	journal := &fakeJournal{}
	uc := NewUseCase(&fakeClient{err: &clinicapi.APIError{StatusCode: 500, Body: "Doctor not found"}}, journal, logger.NewNop())

	err := uc.Execute(context.Background(), &Request{DoctorID: intPtr(9), StartDate: "2021-01-01", EndDate: "2021-01-31"})
	assert.ErrorIs(t, err, ErrBackend)
	assert.Equal(t, "Doctor not found", clinicapi.ServerMessage(err))
	require.Len(t, journal.entries, 1)
	assert.False(t, journal.entries[0].Succeeded)
}
