package get_journal

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	msgInvalidLimit = "Invalid limit"
	msgFailed       = "Failed to load the journal"
)

type Handler struct {
	journal  JournalReader
	renderer Renderer
	logger   Logger
}

func NewHandler(journal JournalReader, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		journal:  journal,
		renderer: renderer,
		logger:   logger,
	}
}

// Handle GET /journal?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	page := JournalPage{Enabled: h.journal.Enabled()}
	title := "Operations journal"

	if !page.Enabled {
		h.renderer.Render(w, http.StatusOK, handlers.PageJournal, handlers.Page{Title: title, Data: page})
		return
	}

	limit := uint64(defaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || parsed == 0 || parsed > maxLimit {
			h.logger.Warn("GET /journal - Invalid limit %q", raw)
			h.renderer.RenderError(w, http.StatusBadRequest, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	entries, err := h.journal.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /journal - Failed to list entries: %v", err)
		h.renderer.Render(w, http.StatusOK, handlers.PageJournal, handlers.Page{Title: title, Alert: msgFailed, Data: page})
		return
	}
	page.Entries = entries

	h.renderer.Render(w, http.StatusOK, handlers.PageJournal, handlers.Page{Title: title, Data: page})
}
