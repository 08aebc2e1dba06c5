package get_reschedule_form

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ClinicConsole/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

type LimitsService interface {
	Get(ctx context.Context) (*domain.ClinicLimits, error)
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, page handlers.Page)
	RenderError(w http.ResponseWriter, status int, message string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
