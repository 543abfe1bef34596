package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/internal/society/store/memory"
)

func seedPool(t *testing.T, mem *memory.Store, units int) domain.EmergencyService {
	t.Helper()
	pool := domain.EmergencyService{
		ID:             "pool-" + t.Name(),
		ServiceType:    "ambulance",
		Description:    "On-call fleet",
		AvailableUnits: units,
	}
	require.NoError(t, mem.EmergencyServices().CreateEmergencyService(context.Background(), pool))
	return pool
}

func TestReserveUnit_DecrementsPoolAndOpensLedgerEntry(t *testing.T) {
	mem := memory.New()
	svc := &ReservationService{Store: mem}
	ctx := context.Background()
	pool := seedPool(t, mem, 3)

	result, err := svc.ReserveUnit(ctx, pool.ID, "requester-1")
	require.NoError(t, err)
	require.Equal(t, pool.ID, result.Reservation.PoolID)
	require.Equal(t, "requester-1", result.Reservation.RequesterID)

	// The returned pool row reflects the decrement; no follow-up read is
	// needed to learn the post-reserve count.
	require.Equal(t, pool.ID, result.Pool.ID)
	require.Equal(t, 2, result.Pool.AvailableUnits)

	got, err := mem.EmergencyServices().GetEmergencyServiceByID(ctx, pool.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.AvailableUnits)

	open, err := mem.Reservations().ListReservationsByPool(ctx, pool.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
}

func TestReserveUnit_PoolNotFound(t *testing.T) {
	svc := &ReservationService{Store: memory.New()}

	_, err := svc.ReserveUnit(context.Background(), "missing", "requester-1")
	require.ErrorIs(t, err, ErrPoolNotFound)
	require.Equal(t, KindNotFound, Classify(err))
}

func TestReserveUnit_NoUnitsAvailable(t *testing.T) {
	mem := memory.New()
	svc := &ReservationService{Store: mem}
	pool := seedPool(t, mem, 0)

	_, err := svc.ReserveUnit(context.Background(), pool.ID, "requester-1")
	require.ErrorIs(t, err, ErrNoUnitsAvailable)
	require.Equal(t, KindConflict, Classify(err))
}

func TestReserveUnit_LedgerFailureRestoresPoolCount(t *testing.T) {
	mem := memory.New()
	svc := &ReservationService{Store: mem}
	ctx := context.Background()
	pool := seedPool(t, mem, 2)

	boom := errors.New("ledger write rejected")
	mem.InjectErr("CreateReservation", boom)

	_, err := svc.ReserveUnit(ctx, pool.ID, "requester-1")
	require.ErrorIs(t, err, boom)

	// The decrement was compensated: the count is back to what the call
	// observed and no ledger entry exists.
	got, err := mem.EmergencyServices().GetEmergencyServiceByID(ctx, pool.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.AvailableUnits)

	open, err := mem.Reservations().ListReservationsByPool(ctx, pool.ID)
	require.NoError(t, err)
	require.Empty(t, open)
}

func TestReserveUnit_SingleUnitContention(t *testing.T) {
	mem := memory.New()
	svc := &ReservationService{Store: mem}
	pool := seedPool(t, mem, 1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ReserveUnit(context.Background(), pool.ID, "requester")
		}(i)
	}
	wg.Wait()

	var successes, contentionFailures int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrConcurrentUpdate), errors.Is(err, ErrNoUnitsAvailable):
			contentionFailures++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, successes)
	require.Equal(t, 1, contentionFailures)

	got, err := mem.EmergencyServices().GetEmergencyServiceByID(context.Background(), pool.ID)
	require.NoError(t, err)
	require.Equal(t, 0, got.AvailableUnits)

	open, err := mem.Reservations().ListReservationsByPool(context.Background(), pool.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
}

func TestReserveUnit_PoolLedgerInvariantUnderContention(t *testing.T) {
	mem := memory.New()
	svc := &ReservationService{Store: mem}
	const capacity = 3
	const requesters = 12
	pool := seedPool(t, mem, capacity)

	var wg sync.WaitGroup
	errs := make([]error, requesters)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ReserveUnit(context.Background(), pool.ID, "requester")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		}
	}
	require.LessOrEqual(t, successes, capacity)

	got, err := mem.EmergencyServices().GetEmergencyServiceByID(context.Background(), pool.ID)
	require.NoError(t, err)
	open, err := mem.Reservations().ListReservationsByPool(context.Background(), pool.ID)
	require.NoError(t, err)

	// Available units plus open reservations always equals capacity.
	require.Equal(t, capacity, got.AvailableUnits+len(open))
	require.Equal(t, successes, len(open))
}

func TestReleaseUnit_RestoresCapacity(t *testing.T) {
	mem := memory.New()
	svc := &ReservationService{Store: mem}
	ctx := context.Background()
	pool := seedPool(t, mem, 1)

	result, err := svc.ReserveUnit(ctx, pool.ID, "requester-1")
	require.NoError(t, err)
	require.Equal(t, 0, result.Pool.AvailableUnits)

	got, err := svc.ReleaseUnit(ctx, result.Reservation.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.AvailableUnits)

	// The unit is reservable again.
	_, err = svc.ReserveUnit(ctx, pool.ID, "requester-2")
	require.NoError(t, err)
}

func TestReleaseUnit_IsIdempotent(t *testing.T) {
	mem := memory.New()
	svc := &ReservationService{Store: mem}
	ctx := context.Background()
	pool := seedPool(t, mem, 1)

	result, err := svc.ReserveUnit(ctx, pool.ID, "requester-1")
	require.NoError(t, err)

	_, err = svc.ReleaseUnit(ctx, result.Reservation.ID)
	require.NoError(t, err)

	// A second release finds no ledger entry and never credits twice.
	_, err = svc.ReleaseUnit(ctx, result.Reservation.ID)
	require.ErrorIs(t, err, ErrReservationNotFound)

	got, err := mem.EmergencyServices().GetEmergencyServiceByID(ctx, pool.ID)
	require.NoError(t, err)
	require.Equal(t, 1, got.AvailableUnits)
}

func TestReleaseUnit_CreditFailureSurfacesError(t *testing.T) {
	mem := memory.New()
	svc := &ReservationService{Store: mem}
	ctx := context.Background()
	pool := seedPool(t, mem, 1)

	result, err := svc.ReserveUnit(ctx, pool.ID, "requester-1")
	require.NoError(t, err)

	boom := errors.New("store unreachable")
	mem.InjectErr("IncrementUnits", boom)

	_, err = svc.ReleaseUnit(ctx, result.Reservation.ID)
	require.ErrorIs(t, err, boom)

	// The ledger entry is gone; the drift is reported, not hidden.
	_, err = mem.Reservations().GetReservationByID(ctx, result.Reservation.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
