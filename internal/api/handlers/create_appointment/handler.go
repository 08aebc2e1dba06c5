package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	createAppointment "github.com/m04kA/SMC-ClinicConsole/internal/usecase/create_appointment"
)

const (
	msgInvalidForm = "Please fill in all fields correctly"
	msgFailed      = "Failed to create appointment: "
	msgCreated     = "Appointment created"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /appointments
// Ошибка возвращает на форму с сообщением, успех - на таблицу дня приема
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var form CreateAppointmentForm
	if err := handlers.DecodeForm(r, &form); err != nil {
		h.logger.Warn("POST /appointments - Invalid form: %v", err)
		handlers.Redirect(w, r, "/appointments/new", handlers.DateParams(form.Date), msgInvalidForm)
		return
	}

	result, err := h.useCase.Execute(r.Context(), form.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.Redirect(w, r, "/appointments/new", handlers.DateParams(form.Date), msgInvalidForm)

		case errors.Is(err, createAppointment.ErrBackend):
			h.logger.Warn("POST /appointments - Backend rejected appointment: %v", err)
			handlers.Redirect(w, r, "/appointments/new", handlers.DateParams(form.Date), msgFailed+clinicapi.ServerMessage(err))

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.Redirect(w, r, "/appointments/new", handlers.DateParams(form.Date), msgFailed+err.Error())
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created at %s", result.StartTime.Format(domain.DateTimeFormat))
	handlers.Redirect(w, r, "/appointments", handlers.DateParams(result.Date.Format(domain.DateFormat)), msgCreated)
}
