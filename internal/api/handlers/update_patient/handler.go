package update_patient

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-ClinicConsole/internal/service/patients"
)

const (
	msgInvalidForm = "Name and phone number are required"
	msgNotFound    = "Patient not found"
	msgFailed      = "Failed to update patient: "
	msgUpdated     = "Patient updated"
)

type Handler struct {
	service PatientsService
	logger  Logger
}

func NewHandler(service PatientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /patients/{patientId}
// При ошибке возвращает на форму редактирования того же пациента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["patientId"]
	back := url.Values{"id": {key}}

	var form PatientForm
	if err := handlers.DecodeForm(r, &form); err != nil {
		h.logger.Warn("POST /patients/%s - Invalid form: %v", key, err)
		handlers.Redirect(w, r, "/patients", back, msgInvalidForm)
		return
	}

	if err := h.service.Update(r.Context(), key, form.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, patients.ErrInvalidInput):
			h.logger.Warn("POST /patients/%s - Invalid input: %v", key, err)
			handlers.Redirect(w, r, "/patients", back, msgInvalidForm)

		case errors.Is(err, patients.ErrPatientNotFound):
			h.logger.Warn("POST /patients/%s - Not found", key)
			handlers.Redirect(w, r, "/patients", nil, msgNotFound)

		default:
			h.logger.Error("POST /patients/%s - Failed to update patient: %v", key, err)
			handlers.Redirect(w, r, "/patients", back, msgFailed+clinicapi.ServerMessage(err))
		}
		return
	}

	h.logger.Info("POST /patients/%s - Patient updated", key)
	handlers.Redirect(w, r, "/patients", nil, msgUpdated)
}
