package models

import (
	"strings"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

// Request модели

// PatientRequest данные формы создания/редактирования пациента
type PatientRequest struct {
	Name            string `validate:"required,max=255"`
	PhoneNumber     string `validate:"required,max=32"`
	InsuranceNumber string `validate:"max=64"` // Необязательное поле
}

// ToDomain конвертирует request в domain модель
// Пустой номер страховки не отправляется
func (r *PatientRequest) ToDomain() domain.PatientInput {
	input := domain.PatientInput{
		Name:        strings.TrimSpace(r.Name),
		PhoneNumber: strings.TrimSpace(r.PhoneNumber),
	}
	if insurance := strings.TrimSpace(r.InsuranceNumber); insurance != "" {
		input.InsuranceNumber = &insurance
	}
	return input
}

// Response модели

// PatientResponse данные пациента для отображения
type PatientResponse struct {
	ID              string // "patient:abc"
	Key             string // "abc", используется в URL
	Name            string
	PhoneNumber     string
	InsuranceNumber string
}

// Методы конвертации

// FromDomainPatient конвертирует domain модель в DTO
func FromDomainPatient(p *domain.Patient) *PatientResponse {
	if p == nil {
		return nil
	}

	resp := &PatientResponse{
		ID:          p.ID.String(),
		Key:         p.ID.Key,
		Name:        p.Name,
		PhoneNumber: p.PhoneNumber,
	}
	if p.InsuranceNumber != nil {
		resp.InsuranceNumber = *p.InsuranceNumber
	}

	return resp
}

// FromDomainPatientList конвертирует список domain моделей в DTO
func FromDomainPatientList(patients []domain.Patient) []PatientResponse {
	resp := make([]PatientResponse, 0, len(patients))
	for i := range patients {
		resp = append(resp, *FromDomainPatient(&patients[i]))
	}
	return resp
}
