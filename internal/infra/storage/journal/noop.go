package journal

import (
	"context"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

// Noop журнал, который ничего не сохраняет. Используется при [journal] enabled = false
type Noop struct{}

// NewNoop создает выключенный журнал
func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) Record(context.Context, *domain.JournalEntry) error {
	return nil
}

func (Noop) ListRecent(context.Context, uint64) ([]domain.JournalEntry, error) {
	return nil, ErrDisabled
}

func (Noop) Enabled() bool {
	return false
}
