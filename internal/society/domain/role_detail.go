package domain

import "time"

// ResidentDetail holds resident-specific attributes, exactly one row per
// resident profile.
type ResidentDetail struct {
	ProfileID  string
	FlatNo     string
	MoveInDate time.Time
}

// StaffDetail holds staff-specific attributes, exactly one row per staff
// profile.
type StaffDetail struct {
	ProfileID  string
	Department string
	Title      string
}
