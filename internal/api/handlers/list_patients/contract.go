package list_patients

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/service/patients/models"
)

type PatientsService interface {
	List(ctx context.Context) ([]models.PatientResponse, error)
	Get(ctx context.Context, key string) (*models.PatientResponse, error)
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
