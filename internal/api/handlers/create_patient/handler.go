package create_patient

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-ClinicConsole/internal/service/patients"
)

const (
	msgInvalidForm = "Name and phone number are required"
	msgFailed      = "Failed to create patient: "
	msgCreated     = "Patient created"
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

// Handle POST /patients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var form PatientForm
	if err := handlers.DecodeForm(r, &form); err != nil {
		h.logger.Warn("POST /patients - Invalid form: %v", err)
		handlers.Redirect(w, r, "/patients", nil, msgInvalidForm)
		return
	}

	if err := h.service.Create(r.Context(), form.ToServiceRequest()); err != nil {
		switch {
		case errors.Is(err, patients.ErrInvalidInput):
			h.logger.Warn("POST /patients - Invalid input: %v", err)
			handlers.Redirect(w, r, "/patients", nil, msgInvalidForm)
		default:
			h.logger.Error("POST /patients - Failed to create patient: %v", err)
			handlers.Redirect(w, r, "/patients", nil, msgFailed+clinicapi.ServerMessage(err))
		}
		return
	}

	h.logger.Info("POST /patients - Patient created")
	handlers.Redirect(w, r, "/patients", nil, msgCreated)
}
