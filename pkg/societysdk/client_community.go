package societysdk

import (
	"context"
	"net/http"
)

// --- notices ---

func (c *Client) CreateNotice(ctx context.Context, req NoticeRequest) (NoticeResponse, error) {
	var out NoticeResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/notices", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) ListNotices(ctx context.Context) ([]NoticeResponse, error) {
	var out []NoticeResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/notices", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) UpdateNotice(ctx context.Context, id string, req NoticeRequest) (NoticeResponse, error) {
	var out NoticeResponse
	err := c.doJSON(ctx, http.MethodPut, "/v1/notices/"+id, req, &out, http.StatusOK)
	return out, err
}

func (c *Client) DeleteNotice(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/notices/"+id, nil, nil, http.StatusNoContent)
}

// --- polls ---

func (c *Client) CreatePoll(ctx context.Context, req PollRequest) (PollResponse, error) {
	var out PollResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/polls", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) ListPolls(ctx context.Context) ([]PollResponse, error) {
	var out []PollResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/polls", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) UpdatePoll(ctx context.Context, id string, req PollRequest) (PollResponse, error) {
	var out PollResponse
	err := c.doJSON(ctx, http.MethodPut, "/v1/polls/"+id, req, &out, http.StatusOK)
	return out, err
}

func (c *Client) DeletePoll(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/polls/"+id, nil, nil, http.StatusNoContent)
}

// --- events ---

func (c *Client) CreateEvent(ctx context.Context, req EventRequest) (EventResponse, error) {
	var out EventResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/events", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) ListEvents(ctx context.Context) ([]EventResponse, error) {
	var out []EventResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/events", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/events/"+id, nil, nil, http.StatusNoContent)
}

// --- amenities ---

func (c *Client) CreateAmenity(ctx context.Context, req AmenityRequest) (AmenityResponse, error) {
	var out AmenityResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/amenities", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) ListAmenities(ctx context.Context) ([]AmenityResponse, error) {
	var out []AmenityResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/amenities", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) UpdateAmenity(ctx context.Context, id string, req AmenityRequest) (AmenityResponse, error) {
	var out AmenityResponse
	err := c.doJSON(ctx, http.MethodPut, "/v1/amenities/"+id, req, &out, http.StatusOK)
	return out, err
}

func (c *Client) DeleteAmenity(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/amenities/"+id, nil, nil, http.StatusNoContent)
}

// --- bookings ---

func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (BookingResponse, error) {
	var out BookingResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/bookings", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) ListMyBookings(ctx context.Context) ([]BookingResponse, error) {
	var out []BookingResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/bookings", nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) RescheduleBooking(ctx context.Context, id string, req RescheduleBookingRequest) (BookingResponse, error) {
	var out BookingResponse
	err := c.doJSON(ctx, http.MethodPut, "/v1/bookings/"+id, req, &out, http.StatusOK)
	return out, err
}

func (c *Client) CancelBooking(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/v1/bookings/"+id, nil, nil, http.StatusNoContent)
}

// --- complaints ---

func (c *Client) FileComplaint(ctx context.Context, req ComplaintRequest) (ComplaintResponse, error) {
	var out ComplaintResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/complaints", req, &out, http.StatusCreated)
	return out, err
}

func (c *Client) ListMyComplaints(ctx context.Context) ([]ComplaintResponse, error) {
	var out []ComplaintResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/complaints", nil, &out, http.StatusOK)
	return out, err
}

// ListAssignedComplaints lists the complaints assigned to the caller
// (staff only).
func (c *Client) ListAssignedComplaints(ctx context.Context) ([]ComplaintResponse, error) {
	var out []ComplaintResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/complaints/assigned", nil, &out, http.StatusOK)
	return out, err
}

// ListAllComplaints lists every complaint, optionally filtered by status
// (owner and staff only).
func (c *Client) ListAllComplaints(ctx context.Context, status string) ([]ComplaintResponse, error) {
	path := "/v1/complaints/all"
	if status != "" {
		path += "?status=" + status
	}
	var out []ComplaintResponse
	err := c.doJSON(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
	return out, err
}

func (c *Client) AssignComplaint(ctx context.Context, id, staffID string) (ComplaintResponse, error) {
	var out ComplaintResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/complaints/"+id+"/assign", AssignComplaintRequest{StaffID: staffID}, &out, http.StatusOK)
	return out, err
}

func (c *Client) UpdateComplaintStatus(ctx context.Context, id, status string) (ComplaintResponse, error) {
	var out ComplaintResponse
	err := c.doJSON(ctx, http.MethodPost, "/v1/complaints/"+id+"/status", ComplaintStatusRequest{Status: status}, &out, http.StatusOK)
	return out, err
}
