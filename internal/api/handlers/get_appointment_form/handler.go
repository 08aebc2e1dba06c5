package get_appointment_form

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	prepareForm "github.com/m04kA/SMC-ClinicConsole/internal/usecase/prepare_appointment_form"
)

const (
	msgInvalidDate = "Invalid date, expected YYYY-MM-DD"
	msgInternal    = "Failed to prepare the appointment form"
)

type Handler struct {
	useCase  PrepareAppointmentFormUseCase
	renderer Renderer
	logger   Logger
}

func NewHandler(useCase PrepareAppointmentFormUseCase, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /appointments/new?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.ParseDateParam(r, "date")
	if err != nil {
		h.logger.Warn("GET /appointments/new - Invalid date: %v", err)
		h.renderer.RenderError(w, http.StatusBadRequest, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &prepareForm.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /appointments/new - Failed to prepare form: %v", err)
		h.renderer.RenderError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	alerts := result.Alerts
	if alert := handlers.Alert(r); alert != "" {
		alerts = append([]string{alert}, alerts...)
	}

	h.renderer.Render(w, http.StatusOK, handlers.PageAppointmentForm, handlers.Page{
		Title: "New appointment",
		Alert: strings.Join(alerts, ". "),
		Data:  result,
	})
}
