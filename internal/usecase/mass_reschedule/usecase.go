package mass_reschedule

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

// UseCase use case для массового переноса приемов врача
type UseCase struct {
	client   ClinicAPIClient
	journal  Journal
	validate *validator.Validate
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ClinicAPIClient, journal Journal, logger Logger) *UseCase {
	return &UseCase{
		client:   client,
		journal:  journal,
		validate: validator.New(),
		logger:   logger,
	}
}

// Execute выполняет use case массового переноса
// Некорректный диапазон отклоняется до отправки запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("MassReschedule: from=%s, to=%s", req.StartDate, req.EndDate)

	// 1. Валидация и сборка запроса
	reschedule, err := buildRequest(uc.validate, req)
	if err != nil {
		uc.logger.Warn("MassReschedule: validation failed: %v", err)
		return err
	}

	// 2. Отправляем в backend
	err = uc.client.MassReschedule(ctx, reschedule)

	// 3. Записываем результат в журнал
	target := "doctor:" + strconv.Itoa(reschedule.DoctorID)
	payload := reschedule.StartDate.Format(domain.DateFormat) + ".." + reschedule.EndDate.Format(domain.DateFormat)
	if jErr := uc.journal.Record(ctx, domain.NewJournalEntry(domain.OperationMassReschedule, target, payload, err)); jErr != nil {
		uc.logger.Warn("MassReschedule: failed to write journal: %v", jErr)
	}

	if err != nil {
		uc.logger.Error("MassReschedule: backend rejected reschedule for doctor=%d: %v", reschedule.DoctorID, err)
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	uc.logger.Info("MassReschedule: appointments of doctor=%d in %s rescheduled", reschedule.DoctorID, payload)
	return nil
}
