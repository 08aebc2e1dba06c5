package mass_reschedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	massReschedule "github.com/m04kA/SMC-ClinicConsole/internal/usecase/mass_reschedule"
)

const (
	formPath = "/doctors/reschedule"

	msgInvalidForm  = "Please select a doctor and both dates"
	msgInvalidRange = "Start date must not be after end date"
	msgFailed       = "Failed to reschedule appointments: "
	msgRescheduled  = "Appointments rescheduled"
)

type Handler struct {
	useCase MassRescheduleUseCase
	logger  Logger
}

func NewHandler(useCase MassRescheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /doctors/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var form MassRescheduleForm
	if err := handlers.DecodeForm(r, &form); err != nil {
		h.logger.Warn("POST /doctors/reschedule - Invalid form: %v", err)
		handlers.Redirect(w, r, formPath, form.backParams(), msgInvalidForm)
		return
	}

	if err := h.useCase.Execute(r.Context(), form.ToUseCaseRequest()); err != nil {
		switch {
		case errors.Is(err, massReschedule.ErrInvalidDateRange):
			h.logger.Warn("POST /doctors/reschedule - Invalid range %s..%s", form.StartDate, form.EndDate)
			handlers.Redirect(w, r, formPath, form.backParams(), msgInvalidRange)

		case errors.Is(err, massReschedule.ErrInvalidInput):
			h.logger.Warn("POST /doctors/reschedule - Invalid input: %v", err)
			handlers.Redirect(w, r, formPath, form.backParams(), msgInvalidForm)

		default:
			h.logger.Error("POST /doctors/reschedule - Failed to reschedule: %v", err)
			handlers.Redirect(w, r, formPath, form.backParams(), msgFailed+clinicapi.ServerMessage(err))
		}
		return
	}

	h.logger.Info("POST /doctors/reschedule - Appointments rescheduled for %s..%s", form.StartDate, form.EndDate)
	handlers.Redirect(w, r, formPath, nil, msgRescheduled)
}
