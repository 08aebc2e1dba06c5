package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	cancelAppointment "github.com/m04kA/SMC-ClinicConsole/internal/usecase/cancel_appointment"
)

const (
	msgInvalidID = "Invalid appointment id"
	msgNotFound  = "Appointment not found"
	msgFailed    = "Failed to cancel appointment: "
	msgCancelled = "Appointment cancelled"
)

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /appointments/{appointmentId}/cancel
// Отменяемый прием берется из адреса, а не из состояния страницы
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["appointmentId"]

	var form CancelAppointmentForm
	if err := handlers.DecodeForm(r, &form); err != nil {
		h.logger.Warn("POST /appointments/%s/cancel - Invalid form: %v", id, err)
	}
	back := handlers.DateParams(form.Date)

	err := h.useCase.Execute(r.Context(), &cancelAppointment.Request{AppointmentID: id})
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/%s/cancel - Invalid id", id)
			handlers.Redirect(w, r, "/appointments", back, msgInvalidID)

		case errors.Is(err, cancelAppointment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/%s/cancel - Not found", id)
			handlers.Redirect(w, r, "/appointments", back, msgNotFound)

		default:
			h.logger.Error("POST /appointments/%s/cancel - Failed to cancel: %v", id, err)
			handlers.Redirect(w, r, "/appointments", back, msgFailed+clinicapi.ServerMessage(err))
		}
		return
	}

	h.logger.Info("POST /appointments/%s/cancel - Appointment cancelled", id)
	handlers.Redirect(w, r, "/appointments", back, msgCancelled)
}
