package domain

import "time"

// Member roles. Role is immutable once the profile exists.
const (
	RoleOwner    = "owner"
	RoleStaff    = "staff"
	RoleResident = "resident"
)

// ValidRole reports whether role is one of the known member roles.
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleStaff, RoleResident:
		return true
	}
	return false
}

// Profile is the membership record for an identity. Its ID equals the
// identity id. OrganizationID is empty mid-saga in the owner flow: the
// organization does not exist yet when the profile row is written, and the
// final saga step backfills it.
type Profile struct {
	ID             string
	FullName       string
	Role           string
	OrganizationID string
	Phone          string
	CreatedAt      time.Time
}
