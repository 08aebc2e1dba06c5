package clinicapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

const patientPath = "/api/patient"

// ListPatients получает всех пациентов
func (c *Client) ListPatients(ctx context.Context) ([]domain.Patient, error) {
	body, err := c.do(ctx, http.MethodGet, patientPath, nil, nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeData[[]patientDTO](body)
	if err != nil {
		return nil, err
	}

	patients := make([]domain.Patient, 0, len(dtos))
	for i := range dtos {
		patient, err := dtos[i].toDomain()
		if err != nil {
			return nil, err
		}
		patients = append(patients, patient)
	}

	return patients, nil
}

// GetPatient получает пациента по ключу записи
func (c *Client) GetPatient(ctx context.Context, key string) (*domain.Patient, error) {
	body, err := c.do(ctx, http.MethodGet, patientPath+"/"+url.PathEscape(key), nil, nil)
	if err != nil {
		return nil, err
	}

	dto, err := decodeData[*patientDTO](body)
	if err != nil {
		return nil, err
	}
	if dto == nil {
		return nil, ErrNotFound
	}

	patient, err := dto.toDomain()
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// CreatePatient создает пациента
func (c *Client) CreatePatient(ctx context.Context, input domain.PatientInput) error {
	_, err := c.do(ctx, http.MethodPost, patientPath, nil, newPatientPayload(input))
	return err
}

// UpdatePatient обновляет данные пациента
func (c *Client) UpdatePatient(ctx context.Context, key string, input domain.PatientInput) error {
	_, err := c.do(ctx, http.MethodPut, patientPath+"/"+url.PathEscape(key), nil, newPatientPayload(input))
	return err
}

// DeletePatient удаляет пациента вместе с его приемами (это делает backend)
func (c *Client) DeletePatient(ctx context.Context, key string) error {
	_, err := c.do(ctx, http.MethodDelete, patientPath+"/"+url.PathEscape(key), nil, nil)
	return err
}
