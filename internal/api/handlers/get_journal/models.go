package get_journal

import "github.com/m04kA/SMC-ClinicConsole/internal/domain"

// JournalPage данные страницы журнала
type JournalPage struct {
	Enabled bool
	Entries []domain.JournalEntry
}
