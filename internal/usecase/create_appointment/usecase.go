package create_appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

// UseCase use case для создания приема
type UseCase struct {
	client       ClinicAPIClient
	journal      Journal
	allowedTypes []domain.AppointmentType
	validate     *validator.Validate
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client ClinicAPIClient,
	journal Journal,
	allowedTypes []domain.AppointmentType,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		journal:      journal,
		allowedTypes: allowedTypes,
		validate:     validator.New(),
		logger:       logger,
	}
}

// Execute выполняет use case создания приема
// Пересечения не проверяются: это делает backend
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s, patient=%s, type=%s",
		req.Date, req.StartTime, req.PatientID, req.AppointmentType)

	// 1. Валидация формы
	if err := validateRequest(uc.validate, req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем запрос
	appointment, err := buildAppointment(req, uc.allowedTypes)
	if err != nil {
		uc.logger.Warn("CreateAppointment: failed to build request: %v", err)
		return nil, err
	}

	// 3. Отправляем в backend
	err = uc.client.CreateAppointment(ctx, appointment)

	// 4. Записываем результат в журнал
	payload := fmt.Sprintf("start=%s doctor=%d room=%d type=%s",
		appointment.StartTime.Format(domain.DateTimeFormat), appointment.Doctor, appointment.RoomNr, appointment.Type)
	if jErr := uc.journal.Record(ctx, domain.NewJournalEntry(domain.OperationCreateAppointment, appointment.PatientID.String(), payload, err)); jErr != nil {
		uc.logger.Warn("CreateAppointment: failed to write journal: %v", jErr)
	}

	if err != nil {
		uc.logger.Error("CreateAppointment: backend rejected appointment: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	uc.logger.Info("CreateAppointment: appointment at %s created", appointment.StartTime.Format(domain.DateTimeFormat))

	y, m, d := appointment.StartTime.Date()
	return &Response{
		Date:      time.Date(y, m, d, 0, 0, 0, 0, appointment.StartTime.Location()),
		StartTime: appointment.StartTime,
	}, nil
}
