package create_patient

import (
	"context"

	"github.com/m04kA/SMC-ClinicConsole/internal/service/patients/models"
)

type PatientsService interface {
	Create(ctx context.Context, req *models.PatientRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
