package mass_reschedule

import (
	"net/url"

	massReschedule "github.com/m04kA/SMC-ClinicConsole/internal/usecase/mass_reschedule"
)

// MassRescheduleForm поля формы массового переноса
type MassRescheduleForm struct {
	DoctorID  *int   `schema:"doctor_id"`
	StartDate string `schema:"start_date"`
	EndDate   string `schema:"end_date"`
}

// ToUseCaseRequest конвертирует форму в модель use case
func (f *MassRescheduleForm) ToUseCaseRequest() *massReschedule.Request {
	return &massReschedule.Request{
		DoctorID:  f.DoctorID,
		StartDate: f.StartDate,
		EndDate:   f.EndDate,
	}
}

// backParams даты для повторного заполнения формы после redirect
func (f *MassRescheduleForm) backParams() url.Values {
	params := url.Values{}
	if f.StartDate != "" {
		params.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		params.Set("end_date", f.EndDate)
	}
	return params
}
