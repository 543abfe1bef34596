package domain

import "time"

type Notice struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Poll struct {
	ID        string
	Question  string
	Options   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Event struct {
	ID             string
	OrganizationID string
	Title          string
	Description    string
	EventDate      time.Time
}

// Amenity is a bookable society service (plumbing, gym slots, etc).
type Amenity struct {
	ID          string
	Name        string
	Description string
	Category    string
}

type Booking struct {
	ID            string
	UserID        string
	AmenityID     string
	RequestedDate time.Time
	CreatedAt     time.Time
}

// Complaint statuses.
const (
	ComplaintOpen       = "open"
	ComplaintInProgress = "in_progress"
	ComplaintResolved   = "resolved"
)

type Complaint struct {
	ID          string
	UserID      string
	Title       string
	Description string
	ImageURL    string
	Status      string
	AssignedTo  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
