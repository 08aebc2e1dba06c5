package delete_patient

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-ClinicConsole/internal/service/patients"
)

const (
	msgNotFound = "Patient not found"
	msgFailed   = "Failed to delete patient: "
	msgDeleted  = "Patient deleted"
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

// Handle POST /patients/{patientId}/delete
// Подтверждение спрашивается на странице, backend удаляет и приемы пациента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["patientId"]

	if err := h.service.Delete(r.Context(), key); err != nil {
		switch {
		case errors.Is(err, patients.ErrPatientNotFound):
			h.logger.Warn("POST /patients/%s/delete - Not found", key)
			handlers.Redirect(w, r, "/patients", nil, msgNotFound)
		default:
			h.logger.Error("POST /patients/%s/delete - Failed to delete patient: %v", key, err)
			handlers.Redirect(w, r, "/patients", nil, msgFailed+clinicapi.ServerMessage(err))
		}
		return
	}

	h.logger.Info("POST /patients/%s/delete - Patient deleted", key)
	handlers.Redirect(w, r, "/patients", nil, msgDeleted)
}
