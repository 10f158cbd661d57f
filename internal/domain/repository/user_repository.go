package repository

import (
	"context"
	"errors"
	"time"

	"github.com/VinaySonwane/note-App/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned by Create when the email is already taken.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines user persistence, including the embedded OTP
// challenge fields.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// SetChallenge stores a new OTP code and expiry for the user,
	// overwriting any previous challenge.
	SetChallenge(ctx context.Context, userID, code string, expiresAt time.Time) error

	// ConsumeChallenge clears the OTP fields if and only if the stored code
	// equals code. It reports whether the challenge was consumed, so a
	// concurrent or repeated consume of the same code observes false.
	ConsumeChallenge(ctx context.Context, userID, code string) (bool, error)
}
