package get_journal

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

type JournalReader interface {
	Enabled() bool
	ListRecent(ctx context.Context, limit uint64) ([]domain.JournalEntry, error)
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, page handlers.Page)
	RenderError(w http.ResponseWriter, status int, message string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
