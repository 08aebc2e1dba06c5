package get_reschedule_form

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

const msgLimitsUnavailable = "Failed to load doctor amount"

type Handler struct {
	limits       LimitsService
	renderer     Renderer
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(limits LimitsService, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		limits:       limits,
		renderer:     renderer,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /doctors/reschedule?start_date=&end_date=
// Даты по умолчанию - сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var alerts []string
	if alert := handlers.Alert(r); alert != "" {
		alerts = append(alerts, alert)
	}

	limits, err := h.limits.Get(r.Context())
	if err != nil {
		h.logger.Warn("GET /doctors/reschedule - Limits unavailable: %v", err)
		limits = &domain.ClinicLimits{}
		alerts = append(alerts, msgLimitsUnavailable)
	}

	today := h.timeProvider.Now().Format(domain.DateFormat)
	page := ReschedulePage{
		Doctors:   limits.Doctors(),
		StartDate: dateOrDefault(r.URL.Query().Get("start_date"), today),
		EndDate:   dateOrDefault(r.URL.Query().Get("end_date"), today),
	}

	h.renderer.Render(w, http.StatusOK, handlers.PageReschedule, handlers.Page{
		Title: "Reschedule doctor appointments",
		Alert: strings.Join(alerts, ". "),
		Data:  page,
	})
}

func dateOrDefault(value, fallback string) string {
	if handlers.DateParams(value).Get("date") == "" {
		return fallback
	}
	return value
}
