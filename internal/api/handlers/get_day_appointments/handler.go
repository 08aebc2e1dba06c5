package get_day_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	listDay "github.com/m04kA/SMC-ClinicConsole/internal/usecase/list_day_appointments"
)

const (
	msgInvalidDate = "Invalid date, expected YYYY-MM-DD"
	msgInternal    = "Failed to load appointments"
)

type Handler struct {
	useCase  ListDayAppointmentsUseCase
	renderer Renderer
	logger   Logger
}

func NewHandler(useCase ListDayAppointmentsUseCase, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /appointments?date=YYYY-MM-DD
// Без даты показывается сегодняшний день
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.ParseDateParam(r, "date")
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid date: %v", err)
		h.renderer.RenderError(w, http.StatusBadRequest, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listDay.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		h.renderer.RenderError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	h.renderer.Render(w, http.StatusOK, handlers.PageAppointments, handlers.Page{
		Title: "Appointments on " + result.Date.Format(domain.DateFormat),
		Alert: handlers.Alert(r),
		Data:  result,
	})
}
