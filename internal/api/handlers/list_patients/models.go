package list_patients

import "github.com/m04kA/SMC-ClinicConsole/internal/service/patients/models"

// PatientsPage данные страницы пациентов
type PatientsPage struct {
	Patients []models.PatientResponse
	Editing  *models.PatientResponse // Пациент в форме редактирования, nil - форма создания
}
