package update_patient

import "github.com/m04kA/SMC-ClinicConsole/internal/service/patients/models"

// PatientForm поля формы пациента
type PatientForm struct {
	Name            string `schema:"name"`
	PhoneNumber     string `schema:"phone_number"`
	InsuranceNumber string `schema:"insurance_number"`
}

// ToServiceRequest конвертирует форму в модель сервиса
func (f *PatientForm) ToServiceRequest() *models.PatientRequest {
	return &models.PatientRequest{
		Name:            f.Name,
		PhoneNumber:     f.PhoneNumber,
		InsuranceNumber: f.InsuranceNumber,
	}
}
