package cancel_appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-ClinicConsole/pkg/logger"
)

type fakeClient struct {
	deleted []string
	err     error
}

func (f *fakeClient) DeleteAppointment(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return f.err
}

type fakeJournal struct {
	entries []*domain.JournalEntry
}

func (f *fakeJournal) Record(_ context.Context, entry *domain.JournalEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"full id", "appointment:a1"},
		{"bare key", "a1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			journal := &fakeJournal{}
			uc := NewUseCase(client, journal, logger.NewNop())

			require.NoError(t, uc.Execute(context.Background(), &Request{AppointmentID: tt.id}))
			assert.Equal(t, []string{"a1"}, client.deleted)
			require.Len(t, journal.entries, 1)
			assert.Equal(t, "appointment:a1", journal.entries[0].Target)
		})
	}
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		clientErr error
		wantErr   error
		wantCalls int
	}{
		{"empty id", "", nil, ErrInvalidInput, 0},
		{"not found", "a1", &clinicapi.APIError{StatusCode: 404, Body: "Appointment not found"}, ErrAppointmentNotFound, 1},
		{"server error", "a1", &clinicapi.APIError{StatusCode: 500}, ErrBackend, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{err: tt.clientErr}
			uc := NewUseCase(client, &fakeJournal{}, logger.NewNop())

			err := uc.Execute(context.Background(), &Request{AppointmentID: tt.id})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, client.deleted, tt.wantCalls)
		})
	}
}
