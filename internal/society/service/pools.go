package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/idx"
	"github.com/strataworks/societyd/pkg/slogx"
)

// PoolService manages the emergency service pools themselves. Allocation
// against a pool goes through ReservationService.
type PoolService struct {
	Store store.Store
}

func (s *PoolService) CreatePool(ctx context.Context, serviceType, description string, units int) (domain.EmergencyService, error) {
	log := slogx.FromContext(ctx)

	if serviceType == "" || units < 0 {
		return domain.EmergencyService{}, ErrInvalidRequest
	}

	pool := domain.EmergencyService{
		ID:             idx.New().String(),
		ServiceType:    serviceType,
		Description:    description,
		AvailableUnits: units,
	}
	if err := s.Store.EmergencyServices().CreateEmergencyService(ctx, pool); err != nil {
		log.Error("failed to create pool", slog.Any("error", err))
		return domain.EmergencyService{}, err
	}

	log.Info("pool created",
		slog.String("pool_id", pool.ID),
		slog.String("service_type", serviceType),
		slog.Int("units", units),
	)
	return pool, nil
}

func (s *PoolService) GetPool(ctx context.Context, id string) (domain.EmergencyService, error) {
	pool, err := s.Store.EmergencyServices().GetEmergencyServiceByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.EmergencyService{}, ErrPoolNotFound
	}
	return pool, err
}

func (s *PoolService) ListPools(ctx context.Context) ([]domain.EmergencyService, error) {
	return s.Store.EmergencyServices().ListEmergencyServices(ctx)
}

// ListOpenReservations lists the open ledger entries against a pool.
func (s *PoolService) ListOpenReservations(ctx context.Context, poolID string) ([]domain.Reservation, error) {
	if _, err := s.GetPool(ctx, poolID); err != nil {
		return nil, err
	}
	return s.Store.Reservations().ListReservationsByPool(ctx, poolID)
}

func (s *PoolService) DeletePool(ctx context.Context, id string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.EmergencyServices().DeleteEmergencyService(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrPoolNotFound
	}
	if err != nil {
		return err
	}

	log.Info("pool deleted", slog.String("pool_id", id))
	return nil
}
