package mass_reschedule

import (
	"context"

	massReschedule "github.com/m04kA/SMC-ClinicConsole/internal/usecase/mass_reschedule"
)

type MassRescheduleUseCase interface {
	Execute(ctx context.Context, req *massReschedule.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
