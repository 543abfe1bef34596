package societysdk

import (
	"context"
	"net/http"
)

// Livez reports process liveness.
func (c *Client) Livez(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK)
	return out, err
}

// Readyz reports whether the service can reach its store.
func (c *Client) Readyz(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &out, http.StatusOK)
	return out, err
}
