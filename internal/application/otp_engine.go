package application

import (
	"context"
	"time"

	"github.com/VinaySonwane/note-App/internal/domain/entity"
	repo "github.com/VinaySonwane/note-App/internal/domain/repository"
	"github.com/VinaySonwane/note-App/pkg/helpers"
)

// OTPEngine generates, stores, expires and validates the one-time passwords
// embedded on user records. A new challenge always overwrites the previous
// one, so at most one OTP is outstanding per user.
type OTPEngine struct {
	Users repo.UserRepository
	TTL   time.Duration

	// Now is swappable for tests.
	Now func() time.Time
}

func NewOTPEngine(users repo.UserRepository, ttl time.Duration) *OTPEngine {
	return &OTPEngine{Users: users, TTL: ttl, Now: time.Now}
}

// Issue generates a fresh 6-digit code expiring TTL from now, persists it and
// returns it so the caller can hand it to the notifier.
func (e *OTPEngine) Issue(ctx context.Context, u *entity.User) (string, error) {
	code, err := helpers.GenOTPCode()
	if err != nil {
		return "", err
	}
	expiresAt := e.Now().Add(e.TTL)
	if err := e.Users.SetChallenge(ctx, u.ID, code, expiresAt); err != nil {
		return "", err
	}
	u.OTPCode = &code
	u.OTPExpiresAt = &expiresAt
	return code, nil
}

// Validate checks the submitted code against the user's pending challenge
// and consumes it on success. The clear is a conditional update keyed on the
// code, so a repeated validate with the same code reports ErrNoChallenge.
func (e *OTPEngine) Validate(ctx context.Context, u *entity.User, submitted string) error {
	if !u.HasChallenge() {
		return ErrNoChallenge
	}
	if !e.Now().Before(*u.OTPExpiresAt) {
		return ErrOTPExpired
	}
	if *u.OTPCode != submitted {
		return ErrOTPMismatch
	}
	consumed, err := e.Users.ConsumeChallenge(ctx, u.ID, submitted)
	if err != nil {
		return err
	}
	if !consumed {
		// Lost a race with another verify or a resend.
		return ErrNoChallenge
	}
	u.OTPCode = nil
	u.OTPExpiresAt = nil
	return nil
}
