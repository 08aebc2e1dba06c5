package limits

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ClinicConsole/internal/domain"
)

// Service сервис для получения лимитов клиники (врачи, кабинеты)
type Service struct {
	client ClinicAPIClient
	logger Logger
}

// NewService создает новый экземпляр сервиса лимитов
func NewService(client ClinicAPIClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Get получает оба лимита параллельно
// Первая ошибка отменяет второй запрос
func (s *Service) Get(ctx context.Context) (*domain.ClinicLimits, error) {
	var doctors, rooms int

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		amount, err := s.client.GetDoctorAmount(gctx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrDoctorAmount, err)
		}
		doctors = amount
		return nil
	})

	g.Go(func() error {
		amount, err := s.client.GetRoomAmount(gctx)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrRoomAmount, err)
		}
		rooms = amount
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Get: failed to fetch clinic limits: %v", err)
		return nil, err
	}

	if doctors < 0 || rooms < 0 {
		s.logger.Warn("Get: backend returned negative limits doctors=%d, rooms=%d", doctors, rooms)
		return nil, fmt.Errorf("%w: doctors=%d, rooms=%d", ErrInvalidAmount, doctors, rooms)
	}

	s.logger.Info("Get: max doctor index=%d, max room index=%d", doctors, rooms)
	return &domain.ClinicLimits{
		MaxDoctorIndex: doctors,
		MaxRoomIndex:   rooms,
	}, nil
}
