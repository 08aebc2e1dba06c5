package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
)

// UseCase use case для отмены приема
type UseCase struct {
	client  ClinicAPIClient
	journal Journal
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ClinicAPIClient, journal Journal, logger Logger) *UseCase {
	return &UseCase{
		client:  client,
		journal: journal,
		logger:  logger,
	}
}

// Execute выполняет use case отмены приема
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("CancelAppointment: appointment=%s", req.AppointmentID)

	// 1. Разбираем идентификатор
	id, err := domain.ParseRecordID(req.AppointmentID, domain.AppointmentTable)
	if err != nil {
		uc.logger.Warn("CancelAppointment: invalid appointment id %q: %v", req.AppointmentID, err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Удаляем прием в backend
	err = uc.client.DeleteAppointment(ctx, id.Key)

	// 3. Записываем результат в журнал
	if jErr := uc.journal.Record(ctx, domain.NewJournalEntry(domain.OperationCancelAppointment, id.String(), "", err)); jErr != nil {
		uc.logger.Warn("CancelAppointment: failed to write journal: %v", jErr)
	}

	if err != nil {
		if errors.Is(err, clinicapi.ErrNotFound) {
			uc.logger.Warn("CancelAppointment: appointment %s not found", id)
			return fmt.Errorf("%w: %w", ErrAppointmentNotFound, err)
		}
		uc.logger.Error("CancelAppointment: failed to cancel appointment %s: %v", id, err)
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	uc.logger.Info("CancelAppointment: appointment %s cancelled", id)
	return nil
}
