package clinicapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

const (
	appointmentPath    = "/api/appointment"
	massReschedulePath = "/api/appointment/mass_reschedule"
)

// ListAppointmentsByDay получает все приемы за день
// GET /api/appointment?filter=day&value=YYYY-MM-DD
func (c *Client) ListAppointmentsByDay(ctx context.Context, day time.Time) ([]domain.Appointment, error) {
	params, err := query.Values(dayFilter{Filter: "day", Value: day.Format(domain.DateFormat)})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build query: %v", ErrInternal, err)
	}

	body, err := c.do(ctx, http.MethodGet, appointmentPath, params, nil)
	if err != nil {
		return nil, err
	}

	dtos, err := decodeData[[]appointmentDTO](body)
	if err != nil {
		return nil, err
	}

	appointments := make([]domain.Appointment, 0, len(dtos))
	for i := range dtos {
		appointment, err := dtos[i].toDomain()
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appointment)
	}

	return appointments, nil
}

// CreateAppointment создает прием
// Пересечения проверяет backend, консоль только передает его отказ
func (c *Client) CreateAppointment(ctx context.Context, appointment domain.NewAppointment) error {
	_, err := c.do(ctx, http.MethodPost, appointmentPath, nil, newCreateAppointmentPayload(appointment))
	return err
}

// DeleteAppointment отменяет прием
func (c *Client) DeleteAppointment(ctx context.Context, key string) error {
	_, err := c.do(ctx, http.MethodDelete, appointmentPath+"/"+url.PathEscape(key), nil, nil)
	return err
}

// MassReschedule переносит все приемы врача в диапазоне дат
func (c *Client) MassReschedule(ctx context.Context, req domain.MassRescheduleRequest) error {
	_, err := c.do(ctx, http.MethodPost, massReschedulePath, nil, newMassReschedulePayload(req))
	return err
}
