package domain

import "time"

// Organization is a residential society. JoinCode is the human-shareable
// token members use to self-associate at signup.
type Organization struct {
	ID        string
	Name      string
	Address   string
	OwnerID   string
	JoinCode  string
	CreatedAt time.Time
}
