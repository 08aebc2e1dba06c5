package patients

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/internal/integrations/clinicapi"
	"github.com/m04kA/SMC-ClinicConsole/internal/service/patients/models"
)

// Service сервис для работы с пациентами
type Service struct {
	client   ClinicAPIClient
	journal  Journal
	validate *validator.Validate
	logger   Logger
}

// NewService создает новый экземпляр сервиса пациентов
func NewService(client ClinicAPIClient, journal Journal, logger Logger) *Service {
	return &Service{
		client:   client,
		journal:  journal,
		validate: validator.New(),
		logger:   logger,
	}
}

// List получает всех пациентов
func (s *Service) List(ctx context.Context) ([]models.PatientResponse, error) {
	patients, err := s.client.ListPatients(ctx)
	if err != nil {
		s.logger.Error("List: failed to fetch patients: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	s.logger.Info("List: fetched %d patients", len(patients))
	return models.FromDomainPatientList(patients), nil
}

// Get получает пациента по ключу записи
func (s *Service) Get(ctx context.Context, key string) (*models.PatientResponse, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: patient id is required", ErrInvalidInput)
	}

	patient, err := s.client.GetPatient(ctx, key)
	if err != nil {
		if errors.Is(err, clinicapi.ErrNotFound) {
			s.logger.Warn("Get: patient key=%s not found", key)
			return nil, ErrPatientNotFound
		}
		s.logger.Error("Get: failed to fetch patient key=%s: %v", key, err)
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return models.FromDomainPatient(patient), nil
}

// Create создает пациента
func (s *Service) Create(ctx context.Context, req *models.PatientRequest) error {
	s.logger.Info("Create: creating patient name=%q", req.Name)

	// 1. Валидируем форму
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Отправляем в backend
	err := s.client.CreatePatient(ctx, req.ToDomain())

	// 3. Записываем результат в журнал
	s.record(ctx, domain.OperationCreatePatient, "", req.Name, err)

	if err != nil {
		s.logger.Error("Create: backend rejected patient: %v", err)
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	s.logger.Info("Create: patient name=%q created", req.Name)
	return nil
}

// Update обновляет данные пациента
func (s *Service) Update(ctx context.Context, key string, req *models.PatientRequest) error {
	s.logger.Info("Update: updating patient key=%s", key)

	// 1. Валидируем форму
	if key == "" {
		return fmt.Errorf("%w: patient id is required", ErrInvalidInput)
	}
	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Отправляем в backend
	err := s.client.UpdatePatient(ctx, key, req.ToDomain())

	// 3. Записываем результат в журнал
	s.record(ctx, domain.OperationUpdatePatient, patientTarget(key), req.Name, err)

	if err != nil {
		if errors.Is(err, clinicapi.ErrNotFound) {
			s.logger.Warn("Update: patient key=%s not found", key)
			return ErrPatientNotFound
		}
		s.logger.Error("Update: backend rejected patient key=%s: %v", key, err)
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return nil
}

// Delete удаляет пациента. Его приемы backend удаляет сам
func (s *Service) Delete(ctx context.Context, key string) error {
	s.logger.Info("Delete: deleting patient key=%s", key)

	if key == "" {
		return fmt.Errorf("%w: patient id is required", ErrInvalidInput)
	}

	err := s.client.DeletePatient(ctx, key)
	s.record(ctx, domain.OperationDeletePatient, patientTarget(key), "", err)

	if err != nil {
		if errors.Is(err, clinicapi.ErrNotFound) {
			s.logger.Warn("Delete: patient key=%s not found", key)
			return ErrPatientNotFound
		}
		s.logger.Error("Delete: backend rejected patient key=%s: %v", key, err)
		return fmt.Errorf("%w: %w", ErrBackend, err)
	}

	return nil
}

// record пишет операцию в журнал. Ошибка журнала не влияет на результат операции
func (s *Service) record(ctx context.Context, op domain.JournalOperation, target, payload string, opErr error) {
	if err := s.journal.Record(ctx, domain.NewJournalEntry(op, target, payload, opErr)); err != nil {
		s.logger.Warn("journal: failed to record %s: %v", op, err)
	}
}

func patientTarget(key string) string {
	return domain.RecordID{Table: domain.PatientTable, Key: key}.String()
}
