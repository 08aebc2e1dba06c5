package confirm_cancellation

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/pkg/logger"
)

func TestHandle(t *testing.T) {
	h := NewHandler(handlers.MustNewRenderer(), logger.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/appointments/a1/cancel?date=2024-01-01", nil)
	req = mux.SetURLVars(req, map[string]string{"appointmentId": "a1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `action="/appointments/a1/cancel"`)
	assert.Contains(t, body, `name="date" value="2024-01-01"`)
}

func TestHandle_MissingID(t *testing.T) {
	h := NewHandler(handlers.MustNewRenderer(), logger.NewNop())

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/appointments//cancel", nil), map[string]string{"appointmentId": " "})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
