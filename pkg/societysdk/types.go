package societysdk

import "time"

// ErrorResponse is the error body every endpoint returns on failure.
type ErrorResponse struct {
	Message string `json:"message"`
}

// --- auth & provisioning ---

type RegisterOwnerRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FullName       string `json:"full_name"`
	Phone          string `json:"phone,omitempty"`
	SocietyName    string `json:"society_name"`
	SocietyAddress string `json:"society_address,omitempty"`
}

type RegisterResidentRequest struct {
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone,omitempty"`
	JoinCode   string    `json:"join_code"`
	FlatNo     string    `json:"flat_no"`
	MoveInDate time.Time `json:"move_in_date,omitempty"`
}

type RegisterStaffRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone,omitempty"`
	JoinCode   string `json:"join_code"`
	Department string `json:"department"`
	Title      string `json:"title,omitempty"`
}

type ProfileResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id"`
	Phone          string `json:"phone,omitempty"`
}

type RegisterResponse struct {
	Profile  ProfileResponse `json:"profile"`
	JoinCode string          `json:"join_code,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Profile ProfileResponse `json:"profile"`
}

// --- emergency services ---

type CreatePoolRequest struct {
	ServiceType string `json:"service_type"`
	Description string `json:"description,omitempty"`
	Units       int    `json:"units"`
}

type PoolResponse struct {
	ID             string `json:"id"`
	ServiceType    string `json:"service_type"`
	Description    string `json:"description,omitempty"`
	AvailableUnits int    `json:"available_units"`
}

type ReserveRequest struct {
	PoolID string `json:"pool_id"`
}

type ReservationResponse struct {
	ID          string    `json:"id"`
	PoolID      string    `json:"pool_id"`
	RequesterID string    `json:"requester_id"`
	OpenedAt    time.Time `json:"opened_at"`
}

// ReserveResponse carries the opened reservation together with the pool row
// as the decrement left it.
type ReserveResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Pool        PoolResponse        `json:"pool"`
}

type ReleaseResponse struct {
	Pool PoolResponse `json:"pool"`
}

// --- community ---

type NoticeRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type NoticeResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type PollResponse struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Options   []string  `json:"options"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EventRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	EventDate   time.Time `json:"event_date"`
}

type EventResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	EventDate      time.Time `json:"event_date"`
}

type AmenityRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
}

type AmenityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category"`
}

type BookingRequest struct {
	AmenityID     string    `json:"amenity_id"`
	RequestedDate time.Time `json:"requested_date"`
}

type RescheduleBookingRequest struct {
	RequestedDate time.Time `json:"requested_date"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	AmenityID     string    `json:"amenity_id"`
	RequestedDate time.Time `json:"requested_date"`
	CreatedAt     time.Time `json:"created_at"`
}

type ComplaintRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}

type AssignComplaintRequest struct {
	StaffID string `json:"staff_id"`
}

type ComplaintStatusRequest struct {
	Status string `json:"status"`
}

type ComplaintResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url,omitempty"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// --- system ---

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime"`
}
