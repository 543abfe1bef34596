package domain

import "time"

// EmergencyService is a finite pool of dispatchable units. AvailableUnits is
// only ever mutated through the store's conditional decrement or commutative
// increment, never a blind write. Invariant: AvailableUnits plus the number
// of open reservations for the pool equals the pool's capacity.
type EmergencyService struct {
	ID             string
	ServiceType    string
	Description    string
	AvailableUnits int
}

// Reservation is the ledger entry for one currently-held unit. Deleting it
// is the authoritative "closed" signal.
type Reservation struct {
	ID          string
	PoolID      string
	RequesterID string
	OpenedAt    time.Time
}
