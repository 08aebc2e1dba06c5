package prepare_appointment_form

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

// UseCase use case для подготовки формы создания приема
type UseCase struct {
	client       ClinicAPIClient
	limits       LimitsService
	schedule     Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	client ClinicAPIClient,
	limits LimitsService,
	schedule Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		limits:       limits,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case подготовки формы
// Ошибки загрузки пациентов и лимитов не прерывают работу: форма показывается с предупреждением
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Определяем день
	// Дата берется по часам хоста и помечается UTC как настенная, без пересчета зоны
	now := uc.timeProvider.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if req.Date != nil {
		day = *req.Date
	}

	uc.logger.Info("PrepareAppointmentForm: date=%s", day.Format(domain.DateFormat))

	// 2. Генерируем времена начала
	startTimes, err := generateStartTimes(uc.schedule.WorkingDay, uc.schedule.StepMinutes)
	if err != nil {
		uc.logger.Error("PrepareAppointmentForm: failed to generate start times: %v", err)
		return nil, err
	}

	resp := &Response{
		Date:       day,
		StartTimes: startTimeOptions(startTimes),
		Types:      typeOptions(uc.schedule.AppointmentTypes),
	}

	// 3. Получаем лимиты. Без них списки врачей и кабинетов содержат только 0
	limits, err := uc.limits.Get(ctx)
	if err != nil {
		uc.logger.Warn("PrepareAppointmentForm: limits unavailable, falling back to zero: %v", err)
		limits = &domain.ClinicLimits{}
		resp.Alerts = append(resp.Alerts, AlertLimitsUnavailable)
	}
	resp.Doctors = limits.Doctors()
	resp.Rooms = limits.Rooms()

	// 4. Получаем пациентов
	patients, err := uc.client.ListPatients(ctx)
	if err != nil {
		uc.logger.Warn("PrepareAppointmentForm: patients unavailable: %v", err)
		resp.Alerts = append(resp.Alerts, AlertPatientsUnavailable)
	}
	resp.Patients = patientOptions(patients)

	uc.logger.Info("PrepareAppointmentForm: %d start times, %d patients, %d doctors, %d rooms",
		len(resp.StartTimes), len(resp.Patients), len(resp.Doctors), len(resp.Rooms))

	return resp, nil
}

func typeOptions(appointmentTypes []domain.AppointmentType) []Option {
	options := make([]Option, 0, len(appointmentTypes))
	for _, t := range appointmentTypes {
		options = append(options, Option{Label: t.Label(), Value: string(t)})
	}
	return options
}

func patientOptions(patients []domain.Patient) []Option {
	options := make([]Option, 0, len(patients))
	for _, p := range patients {
		label := p.Name
		if p.PhoneNumber != "" {
			label = fmt.Sprintf("%s (%s)", p.Name, p.PhoneNumber)
		}
		options = append(options, Option{Label: label, Value: p.ID.String()})
	}
	return options
}
