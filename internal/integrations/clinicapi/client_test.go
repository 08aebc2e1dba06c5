package clinicapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/pkg/logger"
)

const appointmentsBody = `{"data":[{
	"id": {"tb": "appointment", "id": {"String": "a1"}},
	"doctor": 2,
	"patient": {"id": {"tb": "patient", "id": {"String": "p1"}}, "name": "John Doe", "phone_number": "123"},
	"appointment_type": "quick_checkup",
	"start_time": "2024-01-01T09:00:00",
	"end_time": "2024-01-01T09:45:00",
	"room_nr": 3
}]}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, nil, logger.NewNop())
}

func TestListAppointmentsByDay(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/appointment", r.URL.Path)
		assert.Equal(t, "day", r.URL.Query().Get("filter"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("value"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = io.WriteString(w, appointmentsBody)
	})

	appointments, err := client.ListAppointmentsByDay(context.Background(), time.Date(2024, 1, 1, 15, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, appointments, 1)

	got := appointments[0]
	assert.Equal(t, domain.RecordID{Table: "appointment", Key: "a1"}, got.ID)
	assert.Equal(t, 2, got.Doctor)
	assert.Equal(t, "John Doe", got.Patient.Name)
	assert.Equal(t, "patient:p1", got.Patient.ID.String())
	assert.Equal(t, domain.AppointmentType("quick_checkup"), got.Type)
	assert.Equal(t, 45, got.DurationMinutes())
	assert.Equal(t, 3, got.RoomNr)
}

func TestListAppointmentsByDay_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, "db is down", ErrUnexpectedStatus},
		{"malformed json", http.StatusOK, `{"data": [`, ErrInvalidResponse},
		{"missing id", http.StatusOK, `{"data":[{"doctor":1,"room_nr":1,"start_time":"2024-01-01T09:00:00","end_time":"2024-01-01T09:30:00","patient":{"id":"patient:p1","name":"x"}}]}`, ErrInvalidResponse},
		{"missing patient key", http.StatusOK, `{"data":[{"id":"appointment:a1","doctor":1,"room_nr":1,"start_time":"2024-01-01T09:00:00","end_time":"2024-01-01T09:30:00","patient":{"id":{"tb":"patient","id":{}},"name":"x"}}]}`, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.ListAppointmentsByDay(context.Background(), time.Now())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateAppointment(t *testing.T) {
	var got map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/appointment", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := client.CreateAppointment(context.Background(), domain.NewAppointment{
		StartTime: time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC),
		Type:      "quick_checkup",
		PatientID: domain.RecordID{Table: "patient", Key: "p1"},
		Doctor:    1,
		RoomNr:    4,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"start_time":       "2024-01-01T08:30:00",
		"appointment_type": "quick_checkup",
		"patient_id":       "patient:p1",
		"doctor":           float64(1),
		"room_nr":          float64(4),
	}, got)
}

func TestCreateAppointment_ServerRejects(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, "Appointment overlaps with another appointment")
	})

	err := client.CreateAppointment(context.Background(), domain.NewAppointment{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Appointment overlaps with another appointment", ServerMessage(err))
}

func TestDeleteAppointment_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/appointment/a1", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "Appointment not found")
	})

	err := client.DeleteAppointment(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Appointment not found", ServerMessage(err))
}

func TestMassReschedule(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointment/mass_reschedule", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"doctor_id":1,"start_date":"2021-01-01","end_date":"2021-01-31"}`, string(body))
	})

	err := client.MassReschedule(context.Background(), domain.MassRescheduleRequest{
		DoctorID:  1,
		StartDate: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2021, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
}

func TestPatients(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/patient":
			_, _ = io.WriteString(w, `{"data":[{"id":{"tb":"patient","id":{"String":"p1"}},"name":"John","phone_number":"1"},{"id":{"tb":"patient","id":{"Number":7}},"name":"Jane","phone_number":"2","insurance_number":"X-1"}]}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/patient/p1":
			_, _ = io.WriteString(w, `{"data":{"id":{"tb":"patient","id":{"String":"p1"}},"name":"John","phone_number":"1"}}`)
		case r.Method == http.MethodPut && r.URL.Path == "/api/patient/p1":
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"name":"Johnny","phone_number":"5"}`, string(body))
		case r.Method == http.MethodDelete && r.URL.Path == "/api/patient/p1":
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	patients, err := client.ListPatients(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "p1", patients[0].ID.Key)
	assert.Equal(t, "7", patients[1].ID.Key)
	require.NotNil(t, patients[1].InsuranceNumber)
	assert.Equal(t, "X-1", *patients[1].InsuranceNumber)

	patient, err := client.GetPatient(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "John", patient.Name)

	_, err = client.GetPatient(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, client.UpdatePatient(ctx, "p1", domain.PatientInput{Name: "Johnny", PhoneNumber: "5"}))
	require.NoError(t, client.DeletePatient(ctx, "p1"))
}

func TestAmounts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/config/doctor_amount":
			_, _ = io.WriteString(w, "4\n")
		case "/api/config/room_amount":
			_, _ = io.WriteString(w, "nine")
		}
	})

	doctors, err := client.GetDoctorAmount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, doctors)

	_, err = client.GetRoomAmount(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(srv.URL, time.Second, nil, logger.NewNop())
	_, err := client.ListPatients(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
