package get_day_appointments

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	listDay "github.com/m04kA/SMC-ClinicConsole/internal/usecase/list_day_appointments"
	"github.com/m04kA/SMC-ClinicConsole/pkg/logger"
)

func newHandler(t *testing.T, backend http.HandlerFunc) *Handler {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	log := logger.NewNop()
	client := clinicapi.NewClient(srv.URL, time.Second, nil, log)
	return NewHandler(listDay.NewUseCase(client, log), handlers.MustNewRenderer(), log)
}

func tableBody(t *testing.T, html string) string {
	t.Helper()
	start := strings.Index(html, "<tbody>")
	end := strings.Index(html, "</tbody>")
	require.True(t, start >= 0 && end > start, "no table body in page")
	return html[start:end]
}

func TestHandle_BackendFailureRendersPlaceholder(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "db is down")
	})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/appointments?date=2024-01-01", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := tableBody(t, rec.Body.String())
	assert.Equal(t, 1, strings.Count(body, "<tr"))
	assert.Contains(t, body, listDay.NoAppointmentsText)
	assert.NotContains(t, rec.Body.String(), "db is down")
}

func TestHandle_Rows(t *testing.T) {
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("value"))
		_, _ = io.WriteString(w, `{"data":[
			{"id":{"tb":"appointment","id":{"String":"a1"}},"doctor":1,
			 "patient":{"id":{"tb":"patient","id":{"String":"p1"}},"name":"John Doe","phone_number":"1"},
			 "appointment_type":"extensive_checkup","start_time":"2024-01-01T09:00:00","end_time":"2024-01-01T09:45:00","room_nr":2},
			{"id":{"tb":"appointment","id":{"String":"a2"}},"doctor":0,
			 "patient":{"id":{"tb":"patient","id":{"String":"p2"}},"name":"Jane Roe","phone_number":"2"},
			 "appointment_type":"surgery","start_time":"2024-01-01T11:00:00","end_time":"2024-01-01T10:30:00","room_nr":0}
		]}`)
	})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/appointments?date=2024-01-01&alert=Appointment+created", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	page := rec.Body.String()
	body := tableBody(t, page)

	assert.Equal(t, 2, strings.Count(body, "<tr"))
	assert.Contains(t, body, "Doctor 1")
	assert.Contains(t, body, "John Doe")
	assert.Contains(t, body, "Extensive checkup")
	assert.Contains(t, body, "<td>45</td>")
	assert.Contains(t, body, `/appointments/a1/cancel?date=2024-01-01`)
	assert.Contains(t, body, `class="invalid-range"`)
	assert.Contains(t, body, "<td>-30</td>")
	assert.NotContains(t, body, listDay.NoAppointmentsText)

	assert.Contains(t, page, "Appointment created")
	assert.Contains(t, page, "/appointments?date=2023-12-31")
	assert.Contains(t, page, "/appointments?date=2024-01-02")
}

func TestHandle_InvalidDate(t *testing.T) {
	called := false
	h := newHandler(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/appointments?date=tomorrow", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}
