package prepare_appointment_form

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
	"github.com/m04kA/SMC-ClinicConsole/pkg/types"
)

// generateStartTimes генерирует времена начала приема для всех рабочих интервалов
// Для каждого интервала [start, end) берется start, start+step, ... пока время меньше end
// Порядок интервалов сохраняется
func generateStartTimes(workingDay []domain.TimeSlot, stepMinutes int) ([]types.TimeString, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidSchedule, stepMinutes)
	}

	result := make([]types.TimeString, 0)

	for _, interval := range workingDay {
		if err := interval.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
		}

		current := interval.Start
		for current.IsBefore(interval.End) {
			result = append(result, current)

			next, err := current.AddMinutes(stepMinutes)
			if err != nil {
				// Интервал упирается в конец суток
				if errors.Is(err, types.ErrTimeOverflow) {
					break
				}
				return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
			}
			current = next
		}
	}

	return result, nil
}

// startTimeOptions представляет времена как пункты списка: показывается HH:MM, отправляется HH:MM:00
func startTimeOptions(times []types.TimeString) []Option {
	options := make([]Option, 0, len(times))
	for _, t := range times {
		options = append(options, Option{Label: t.String(), Value: t.WithSeconds()})
	}
	return options
}
