package clinicapi

import (
	"context"
	"net/http"
)

const (
	doctorAmountPath = "/api/config/doctor_amount"
	roomAmountPath   = "/api/config/room_amount"
)

// GetDoctorAmount возвращает старший индекс врача (plain text)
func (c *Client) GetDoctorAmount(ctx context.Context) (int, error) {
	return c.getAmount(ctx, doctorAmountPath)
}

// GetRoomAmount возвращает старший индекс кабинета (plain text)
func (c *Client) GetRoomAmount(ctx context.Context) (int, error) {
	return c.getAmount(ctx, roomAmountPath)
}

func (c *Client) getAmount(ctx context.Context, path string) (int, error) {
	body, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return 0, err
	}
	return parseAmount(body)
}
