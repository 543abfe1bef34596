package societysdk

import (
	"context"
	"net/http"
)

// CreatePool registers a new emergency service pool (owner only).
func (c *Client) CreatePool(ctx context.Context, req CreatePoolRequest) (PoolResponse, error) {
	var out PoolResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/emergency/pools", req, &out, http.StatusCreated)
	return out, err
}

// ListPools lists all emergency service pools with their available units.
func (c *Client) ListPools(ctx context.Context) ([]PoolResponse, error) {
	var out []PoolResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/emergency/pools", nil, &out, http.StatusOK)
	return out, err
}

// GetPool fetches one pool.
func (c *Client) GetPool(ctx context.Context, poolID string) (PoolResponse, error) {
	var out PoolResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/emergency/pools/"+poolID, nil, &out, http.StatusOK)
	return out, err
}

// DeletePool removes a pool (owner only).
func (c *Client) DeletePool(ctx context.Context, poolID string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/emergency/pools/"+poolID, nil, nil, http.StatusNoContent)
}

// ListPoolReservations lists the open reservations against a pool.
func (c *Client) ListPoolReservations(ctx context.Context, poolID string) ([]ReservationResponse, error) {
	var out []ReservationResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/emergency/pools/"+poolID+"/reservations", nil, &out, http.StatusOK)
	return out, err
}

// Reserve takes one unit from a pool, returning the reservation plus the
// post-reserve pool state. A 409 means the pool is exhausted or another
// requester raced this call; check with IsConflict and retry.
func (c *Client) Reserve(ctx context.Context, poolID string) (ReserveResponse, error) {
	var out ReserveResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/emergency/reservations", ReserveRequest{PoolID: poolID}, &out, http.StatusCreated)
	return out, err
}

// Release closes a reservation and credits the unit back to its pool.
// Releasing an already-released reservation returns a 404.
func (c *Client) Release(ctx context.Context, reservationID string) (ReleaseResponse, error) {
	var out ReleaseResponse
	err := c.doJSON(ctx, http.MethodDelete, "/v1/emergency/reservations/"+reservationID, nil, &out, http.StatusOK)
	return out, err
}
