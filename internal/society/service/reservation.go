package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/saga"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/idx"
	"github.com/strataworks/societyd/pkg/slogx"
)

// ReservationService allocates units out of emergency service pools. The
// pool counter is contended, so the decrement is a compare-and-swap
// conditioned on the count the caller observed: a lost race fails the call
// rather than silently double-allocating, and the caller decides whether to
// retry.
type ReservationService struct {
	Store store.Store
}

// ReserveResult is a successful allocation: the opened ledger entry plus the
// pool row as the decrement left it, so callers learn the post-reserve count
// without a second read.
type ReserveResult struct {
	Reservation domain.Reservation
	Pool        domain.EmergencyService
}

// ReserveUnit takes one unit from the pool and opens a reservation ledger
// entry for it. At most one allocation attempt is made per call; a
// concurrent allocation surfaces as ErrConcurrentUpdate.
func (s *ReservationService) ReserveUnit(ctx context.Context, poolID, requesterID string) (ReserveResult, error) {
	log := slogx.FromContext(ctx)

	if poolID == "" || requesterID == "" {
		return ReserveResult{}, ErrInvalidRequest
	}

	pool, err := s.Store.EmergencyServices().GetEmergencyServiceByID(ctx, poolID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ReserveResult{}, ErrPoolNotFound
		}
		log.Error("failed to read pool", slog.Any("error", err))
		return ReserveResult{}, err
	}
	if pool.AvailableUnits <= 0 {
		return ReserveResult{}, ErrNoUnitsAvailable
	}

	observed := pool.AvailableUnits
	var updated domain.EmergencyService
	res := domain.Reservation{
		ID:          idx.New().String(),
		PoolID:      poolID,
		RequesterID: requesterID,
		OpenedAt:    time.Now(),
	}

	steps := []saga.Step{
		{
			Name: "decrement available units",
			Forward: func(ctx context.Context) (any, error) {
				var err error
				updated, err = s.Store.EmergencyServices().DecrementUnitsCAS(ctx, poolID, observed)
				switch {
				case errors.Is(err, store.ErrConflict):
					return nil, ErrConcurrentUpdate
				case errors.Is(err, store.ErrNotFound):
					return nil, ErrPoolNotFound
				}
				return nil, err
			},
			Compensate: func(ctx context.Context, _ any) error {
				// Write the observed count back rather than incrementing:
				// this step only ran if the swap from observed succeeded.
				return s.Store.EmergencyServices().RestoreUnits(ctx, poolID, observed)
			},
		},
		{
			Name: "open reservation",
			Forward: func(ctx context.Context) (any, error) {
				return res.ID, s.Store.Reservations().CreateReservation(ctx, res)
			},
		},
	}

	if _, err := saga.Run(ctx, steps); err != nil {
		return ReserveResult{}, err
	}

	log.Info("unit reserved",
		slog.String("reservation_id", res.ID),
		slog.String("pool_id", poolID),
		slog.String("requester_id", requesterID),
		slog.Int("units_before", observed),
		slog.Int("units_now", updated.AvailableUnits),
	)
	return ReserveResult{Reservation: res, Pool: updated}, nil
}

// ReleaseUnit closes a reservation and returns its unit to the pool. The
// ledger delete is the idempotency gate: releasing an already-closed
// reservation reports ErrReservationNotFound and never credits the pool
// twice. The credit itself is a plain increment, which is safe to apply
// concurrently with other allocations.
func (s *ReservationService) ReleaseUnit(ctx context.Context, reservationID string) (domain.EmergencyService, error) {
	log := slogx.FromContext(ctx)

	if reservationID == "" {
		return domain.EmergencyService{}, ErrInvalidRequest
	}

	res, err := s.Store.Reservations().DeleteReservationReturning(ctx, reservationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.EmergencyService{}, ErrReservationNotFound
		}
		log.Error("failed to close reservation", slog.Any("error", err))
		return domain.EmergencyService{}, err
	}

	pool, err := s.Store.EmergencyServices().IncrementUnits(ctx, res.PoolID)
	if err != nil {
		// The reservation is gone but the unit was not credited back. The
		// pool now under-reports capacity until an operator reconciles it.
		log.Error("reservation closed but unit credit failed, pool ledger has drifted",
			slog.String("reservation_id", reservationID),
			slog.String("pool_id", res.PoolID),
			slog.Any("error", err),
		)
		return domain.EmergencyService{}, err
	}

	log.Info("unit released",
		slog.String("reservation_id", reservationID),
		slog.String("pool_id", res.PoolID),
		slog.Int("units_now", pool.AvailableUnits),
	)
	return pool, nil
}

// GetReservation fetches one ledger entry.
func (s *ReservationService) GetReservation(ctx context.Context, id string) (domain.Reservation, error) {
	res, err := s.Store.Reservations().GetReservationByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Reservation{}, ErrReservationNotFound
	}
	return res, err
}
