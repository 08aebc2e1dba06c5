package get_appointment_form

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	prepareForm "github.com/m04kA/SMC-ClinicConsole/internal/usecase/prepare_appointment_form"
)

type PrepareAppointmentFormUseCase interface {
	Execute(ctx context.Context, req *prepareForm.Request) (*prepareForm.Response, error)
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
