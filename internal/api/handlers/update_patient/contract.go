package update_patient

import (
	"context"

	"github.com/m04kA/SMC-ClinicConsole/internal/service/patients/models"
)

type PatientsService interface {
	Update(ctx context.Context, key string, req *models.PatientRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
