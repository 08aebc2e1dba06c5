package list_patients

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-ClinicConsole/internal/service/patients"
)

const (
	msgListFailed = "Failed to load patients: "
	msgNotFound   = "Patient not found"
	msgGetFailed  = "Failed to load patient: "
)

type Handler struct {
	service  PatientsService
	renderer Renderer
	logger   Logger
}

func NewHandler(service PatientsService, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /patients?id=<key>
// С id над таблицей открывается форма редактирования пациента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		page   PatientsPage
		alerts []string
	)
	if alert := handlers.Alert(r); alert != "" {
		alerts = append(alerts, alert)
	}

	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /patients - Failed to list patients: %v", err)
		alerts = append(alerts, msgListFailed+clinicapi.ServerMessage(err))
	}
	page.Patients = list

	if key := r.URL.Query().Get("id"); key != "" {
		patient, err := h.service.Get(r.Context(), key)
		switch {
		case err == nil:
			page.Editing = patient
		case errors.Is(err, patients.ErrPatientNotFound):
			h.logger.Warn("GET /patients - Patient %s not found", key)
			alerts = append(alerts, msgNotFound)
		default:
			h.logger.Error("GET /patients - Failed to get patient %s: %v", key, err)
			alerts = append(alerts, msgGetFailed+clinicapi.ServerMessage(err))
		}
	}

	h.renderer.Render(w, http.StatusOK, handlers.PagePatients, handlers.Page{
		Title: "Patients",
		Alert: strings.Join(alerts, ". "),
		Data:  page,
	})
}
