package list_day_appointments

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

// UseCase use case для получения приемов за день
type UseCase struct {
	client       ClinicAPIClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ClinicAPIClient, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения приемов за день
// Любая ошибка backend превращается в заглушку NoAppointmentsText, ошибка не возвращается
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Определяем день
	day := dateOnly(uc.timeProvider.Now())
	if req.Date != nil {
		day = dateOnly(*req.Date)
	}

	resp := &Response{
		Date:     day,
		PrevDate: day.AddDate(0, 0, -1),
		NextDate: day.AddDate(0, 0, 1),
	}

	uc.logger.Info("ListDayAppointments: date=%s", day.Format(domain.DateFormat))

	// 2. Получаем приемы
	appointments, err := uc.client.ListAppointmentsByDay(ctx, day)
	if err != nil {
		uc.logger.Error("ListDayAppointments: failed to fetch appointments for %s: %v", day.Format(domain.DateFormat), err)
		resp.Placeholder = NoAppointmentsText
		return resp, nil
	}

	if len(appointments) == 0 {
		resp.Placeholder = NoAppointmentsText
		return resp, nil
	}

	// 3. Строим строки таблицы
	resp.Rows = make([]Row, 0, len(appointments))
	for i := range appointments {
		row := buildRow(&appointments[i])
		if !row.ValidRange {
			uc.logger.Warn("ListDayAppointments: appointment %s ends before it starts (%s - %s)",
				appointments[i].ID, row.StartTime, row.EndTime)
		}
		resp.Rows = append(resp.Rows, row)
	}

	uc.logger.Info("ListDayAppointments: %d appointments on %s", len(resp.Rows), day.Format(domain.DateFormat))
	return resp, nil
}

func buildRow(a *domain.Appointment) Row {
	return Row{
		ID:              a.ID.Key,
		Doctor:          doctorLabel(a.Doctor),
		PatientName:     a.Patient.Name,
		Type:            a.Type.Label(),
		StartTime:       a.StartTime.Format(domain.TimeFormat),
		EndTime:         a.EndTime.Format(domain.TimeFormat),
		DurationMinutes: a.DurationMinutes(),
		RoomNr:          a.RoomNr,
		ValidRange:      a.HasValidRange(),
	}
}

func doctorLabel(index int) string {
	return fmt.Sprintf("Doctor %d", index)
}

// dateOnly обнуляет время, сохраняя календарную дату
// dateOnly берет календарную дату по часам хоста. Backend хранит время без
// зоны, поэтому UTC здесь только метка настенной даты, без пересчета
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
