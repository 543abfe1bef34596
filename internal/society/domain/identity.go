package domain

import "time"

// Identity is the credential record owned by the identity provider. It is
// created as the first step of a provisioning saga and deleted only as
// compensation.
type Identity struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}
