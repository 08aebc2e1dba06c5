package mass_reschedule

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

// buildRequest проверяет форму и собирает запрос на перенос
// Даты сравниваются как календарные, равные даты допустимы
func buildRequest(validate *validator.Validate, req *Request) (domain.MassRescheduleRequest, error) {
	if err := validate.Struct(req); err != nil {
		return domain.MassRescheduleRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return domain.MassRescheduleRequest{}, fmt.Errorf("%w: invalid start date %q", ErrInvalidInput, req.StartDate)
	}

	end, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		return domain.MassRescheduleRequest{}, fmt.Errorf("%w: invalid end date %q", ErrInvalidInput, req.EndDate)
	}

	if start.After(end) {
		return domain.MassRescheduleRequest{}, fmt.Errorf("%w: %s > %s", ErrInvalidDateRange, req.StartDate, req.EndDate)
	}

	return domain.MassRescheduleRequest{
		DoctorID:  *req.DoctorID,
		StartDate: start,
		EndDate:   end,
	}, nil
}
