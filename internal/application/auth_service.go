package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/VinaySonwane/note-App/internal/domain/entity"
	repo "github.com/VinaySonwane/note-App/internal/domain/repository"
	"github.com/VinaySonwane/note-App/pkg/helpers"
	"github.com/VinaySonwane/note-App/pkg/identity"
	"github.com/VinaySonwane/note-App/pkg/mailer"
)

// UserProjection is the minimal user shape returned to clients. Date of
// birth and OTP internals never leave the service.
type UserProjection struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionResult carries a freshly minted token and the authenticated user.
type SessionResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserProjection
}

// AuthService orchestrates registration, OTP verification and resend,
// Google sign-in, and the token authorization check used by protected
// routes.
type AuthService struct {
	Users    repo.UserRepository
	OTP      *OTPEngine
	JWT      *helpers.JWTManager
	Notifier mailer.Notifier
	Identity identity.Verifier
	Pub      *helpers.RabbitPublisher
	Logger   *logrus.Logger
}

func NewAuthService(users repo.UserRepository, otp *OTPEngine, jwt *helpers.JWTManager, notifier mailer.Notifier, verifier identity.Verifier, pub *helpers.RabbitPublisher, logger *logrus.Logger) *AuthService {
	return &AuthService{
		Users:    users,
		OTP:      otp,
		JWT:      jwt,
		Notifier: notifier,
		Identity: verifier,
		Pub:      pub,
		Logger:   logger,
	}
}

// Register creates a user, issues an OTP challenge and emails it. When the
// email send fails the user still exists and ErrNotifyFailed is returned so
// the handler can report the partial outcome; the client recovers via
// resend. The OTP value itself is never returned.
func (s *AuthService) Register(ctx context.Context, name, email string, dob time.Time) error {
	u := &entity.User{Name: name, Email: email, DOB: dob}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}

	code, err := s.OTP.Issue(ctx, u)
	if err != nil {
		return err
	}

	subject, text := mailer.OTPMessage(code, false)
	if err := s.Notifier.Send(ctx, u.Email, subject, text); err != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("otp email send failed after registration")
		return ErrNotifyFailed
	}
	return nil
}

// VerifyOTP validates the submitted code for the user behind email and, on
// success, mints a session token. Wrong or expired codes leave the pending
// challenge untouched so the client may retry.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (*SessionResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.OTP.Validate(ctx, u, code); err != nil {
		return nil, err
	}
	return s.issueSession(ctx, u)
}

// ResendOTP re-issues the challenge with a fresh code and expiry. The
// previous code becomes invalid the moment the new one is persisted.
func (s *AuthService) ResendOTP(ctx context.Context, email string) error {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code, err := s.OTP.Issue(ctx, u)
	if err != nil {
		return err
	}

	subject, text := mailer.OTPMessage(code, true)
	if err := s.Notifier.Send(ctx, u.Email, subject, text); err != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("otp email resend failed")
		return ErrNotifyFailed
	}
	return nil
}

// GoogleSignIn exchanges a Google ID token for a session, creating the user
// on first sign-in. Google does not supply a birth date, so new federated
// users get the sign-in date as a placeholder. The OTP engine is bypassed
// entirely.
func (s *AuthService) GoogleSignIn(ctx context.Context, credential string) (*SessionResult, error) {
	prof, err := s.Identity.Verify(ctx, credential)
	if err != nil {
		s.Logger.WithError(err).Warn("google credential rejected")
		return nil, ErrInvalidCredential
	}

	u, err := s.Users.GetByEmail(ctx, prof.Email)
	if errors.Is(err, repo.ErrNotFound) {
		u = &entity.User{Name: prof.Name, Email: prof.Email, DOB: time.Now()}
		if cErr := s.Users.Create(ctx, u); cErr != nil {
			if errors.Is(cErr, repo.ErrDuplicateEmail) {
				// Lost a creation race; the row exists now.
				u, err = s.Users.GetByEmail(ctx, prof.Email)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, cErr
			}
		}
	} else if err != nil {
		return nil, err
	}

	return s.issueSession(ctx, u)
}

// Authorize verifies a bearer token and resolves its subject to a live user.
// Any parse, signature, expiry or lookup failure means the request is
// unauthenticated.
func (s *AuthService) Authorize(ctx context.Context, token string) (*entity.User, error) {
	uid, err := s.JWT.Verify(token)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *AuthService) issueSession(ctx context.Context, u *entity.User) (*SessionResult, error) {
	token, exp, err := s.JWT.Mint(u.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Error("token mint failed")
		return nil, err
	}
	s.notifyLogin(ctx, u)
	return &SessionResult{
		Token:     token,
		ExpiresAt: exp,
		User:      UserProjection{ID: u.ID, Name: u.Name, Email: u.Email},
	}, nil
}

// notifyLogin enqueues a login notification email. Best effort: a publish
// failure is logged and never blocks the sign-in.
func (s *AuthService) notifyLogin(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	subject, text := mailer.LoginNotificationMessage(u.Name)
	job := mailer.EmailJob{To: u.Email, Subject: subject, Text: text}
	if err := s.Pub.PublishJSON(ctx, job); err != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("failed to publish login notification")
	}
}
