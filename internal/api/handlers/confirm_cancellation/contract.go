package confirm_cancellation

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
)

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, page handlers.Page)
	RenderError(w http.ResponseWriter, status int, message string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
