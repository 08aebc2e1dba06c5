package get_day_appointments

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	listDay "github.com/m04kA/SMC-ClinicConsole/internal/usecase/list_day_appointments"
)

type ListDayAppointmentsUseCase interface {
	Execute(ctx context.Context, req *listDay.Request) (*listDay.Response, error)
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
