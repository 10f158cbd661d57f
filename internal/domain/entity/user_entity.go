package entity

import (
	"time"
)

// User is the aggregate root for the auth domain.
// The pending OTP challenge is embedded on the record: OTPCode and
// OTPExpiresAt are always both set or both nil, which keeps "at most one
// active challenge per user" a property of the data shape rather than a
// query-time constraint.
type User struct {
	ID           string
	Name         string
	Email        string
	DOB          time.Time
	OTPCode      *string
	OTPExpiresAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasChallenge reports whether an OTP challenge is currently pending.
func (u *User) HasChallenge() bool {
	return u.OTPCode != nil && u.OTPExpiresAt != nil
}
