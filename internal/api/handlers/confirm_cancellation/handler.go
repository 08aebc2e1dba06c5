package confirm_cancellation

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

const (
	msgMissingID   = "Appointment id is required"
	msgInvalidDate = "Invalid date, expected YYYY-MM-DD"
)

type Handler struct {
	renderer Renderer
	logger   Logger
}

func NewHandler(renderer Renderer, logger Logger) *Handler {
	return &Handler{
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /appointments/{appointmentId}/cancel?date=YYYY-MM-DD
// Только показывает подтверждение, backend не вызывается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["appointmentId"])
	if id == "" {
		h.logger.Warn("GET /appointments/{id}/cancel - Missing appointment id")
		h.renderer.RenderError(w, http.StatusBadRequest, msgMissingID)
		return
	}

	date, err := handlers.ParseDateParam(r, "date")
	if err != nil {
		h.logger.Warn("GET /appointments/{id}/cancel - Invalid date: %v", err)
		h.renderer.RenderError(w, http.StatusBadRequest, msgInvalidDate)
		return
	}

	page := ConfirmationPage{ID: id}
	if date != nil {
		page.Date = date.Format(domain.DateFormat)
	}

	h.renderer.Render(w, http.StatusOK, handlers.PageConfirmCancel, handlers.Page{
		Title: "Cancel appointment",
		Alert: handlers.Alert(r),
		Data:  page,
	})
}
