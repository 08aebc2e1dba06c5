package limits

import "context"

// ClinicAPIClient интерфейс клиента backend клиники
type ClinicAPIClient interface {
	GetDoctorAmount(ctx context.Context) (int, error)
	GetRoomAmount(ctx context.Context) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
