package list_patients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-ClinicConsole/internal/service/patients"
	"github.com/m04kA/SMC-ClinicConsole/internal/service/patients/models"
	"github.com/m04kA/SMC-ClinicConsole/pkg/logger"
)

type fakeService struct {
	list    []models.PatientResponse
	listErr error
	getErr  error
}

func (f *fakeService) List(context.Context) ([]models.PatientResponse, error) {
	return f.list, f.listErr
}

func (f *fakeService) Get(_ context.Context, key string) (*models.PatientResponse, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.list {
		if f.list[i].Key == key {
			return &f.list[i], nil
		}
	}
	return nil, patients.ErrPatientNotFound
}

func serve(svc PatientsService, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, handlers.MustNewRenderer(), logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_List(t *testing.T) {
	svc := &fakeService{list: []models.PatientResponse{
		{ID: "patient:p1", Key: "p1", Name: "John Doe", PhoneNumber: "123", InsuranceNumber: "X-1"},
	}}

	rec := serve(svc, "/patients")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "John Doe")
	assert.Contains(t, body, "X-1")
	assert.Contains(t, body, `action="/patients/p1/delete"`)
	assert.Contains(t, body, "New patient")
}

func TestHandle_Edit(t *testing.T) {
	svc := &fakeService{list: []models.PatientResponse{
		{ID: "patient:p1", Key: "p1", Name: "John Doe", PhoneNumber: "123"},
	}}

	body := serve(svc, "/patients?id=p1").Body.String()
	assert.Contains(t, body, "Edit patient")
	assert.Contains(t, body, `action="/patients/p1"`)
	assert.Contains(t, body, `value="John Doe"`)

	body = serve(svc, "/patients?id=ghost").Body.String()
	assert.Contains(t, body, msgNotFound)
	assert.Contains(t, body, "New patient")
}

func TestHandle_ListFailure(t *testing.T) {
	svc := &fakeService{listErr: &clinicapi.APIError{StatusCode: 502, Body: "Bad gateway"}}

	rec := serve(svc, "/patients")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, msgListFailed+"Bad gateway")
	assert.Equal(t, 1, strings.Count(body, "No patients to show."))
}
