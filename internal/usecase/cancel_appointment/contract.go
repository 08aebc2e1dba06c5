package cancel_appointment

import (
	"context"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

// ClinicAPIClient интерфейс клиента backend клиники
type ClinicAPIClient interface {
	DeleteAppointment(ctx context.Context, key string) error
}

// Journal интерфейс журнала операций
type Journal interface {
	Record(ctx context.Context, entry *domain.JournalEntry) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
