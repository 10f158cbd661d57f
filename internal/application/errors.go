package application

import "errors"

// Sentinel errors returned by the auth and note services. Handlers map these
// onto stable 4xx responses; anything else is an infrastructure failure and
// surfaces as a generic 5xx.
var (
	ErrEmailTaken        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrNoChallenge       = errors.New("no pending otp challenge")
	ErrOTPExpired        = errors.New("otp expired")
	ErrOTPMismatch       = errors.New("otp mismatch")
	ErrInvalidCredential = errors.New("invalid identity credential")

	// ErrNotifyFailed signals the partial-failure registration outcome: the
	// user record exists but the OTP email was not delivered.
	ErrNotifyFailed = errors.New("otp email delivery failed")

	ErrNoteNotFound = errors.New("note not found")
	ErrNotOwner     = errors.New("note owned by another user")
)
