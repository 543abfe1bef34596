package societysdk

import (
	"context"
	"net/http"
)

// RegisterOwner creates a society owner account plus a fresh society with a
// join code other members use to sign up.
func (c *Client) RegisterOwner(ctx context.Context, req RegisterOwnerRequest) (RegisterResponse, error) {
	var out RegisterResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register/owner", req, &out, http.StatusCreated)
	return out, err
}

// RegisterResident creates a resident account inside an existing society.
func (c *Client) RegisterResident(ctx context.Context, req RegisterResidentRequest) (RegisterResponse, error) {
	var out RegisterResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register/resident", req, &out, http.StatusCreated)
	return out, err
}

// RegisterStaff creates a staff account inside an existing society.
func (c *Client) RegisterStaff(ctx context.Context, req RegisterStaffRequest) (RegisterResponse, error) {
	var out RegisterResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/register/staff", req, &out, http.StatusCreated)
	return out, err
}

// Login authenticates and stores the session cookie in the client's jar.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/auth/login", LoginRequest{Email: email, Password: password}, &out, http.StatusOK)
	return out, err
}

// Logout clears the session cookie.
func (c *Client) Logout(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/auth/logout", nil, nil, http.StatusNoContent)
}

// Me returns the authenticated member's profile.
func (c *Client) Me(ctx context.Context) (ProfileResponse, error) {
	var out ProfileResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/auth/me", nil, &out, http.StatusOK)
	return out, err
}
