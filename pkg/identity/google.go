package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var (
	// ErrInvalidAudience is returned when the token was minted for a
	// different OAuth client.
	ErrInvalidAudience = errors.New("invalid google audience")
	// ErrMissingClaims is returned when the verified token lacks the email
	// or name claims required to create a user.
	ErrMissingClaims = errors.New("token missing email or name claims")
)

// Profile is the verified identity extracted from a third-party credential.
type Profile struct {
	Email string
	Name  string
}

// Verifier validates an opaque third-party credential and returns the
// verified profile, or rejects it.
type Verifier interface {
	Verify(ctx context.Context, credential string) (*Profile, error)
}

// GoogleVerifier validates Google ID tokens against the tokeninfo endpoint
// and checks the audience matches our OAuth client ID.
type GoogleVerifier struct {
	ClientID string
}

func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{ClientID: clientID}
}

func (v *GoogleVerifier) Verify(ctx context.Context, credential string) (*Profile, error) {
	svc, err := oauth2.NewService(ctx, option.WithHTTPClient(&http.Client{}))
	if err != nil {
		return nil, err
	}

	call := svc.Tokeninfo()
	call.IdToken(credential)
	info, err := call.Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if info.Audience != v.ClientID {
		return nil, ErrInvalidAudience
	}
	if info.Email == "" {
		return nil, ErrMissingClaims
	}

	// tokeninfo does not expose the display name; fetch it from userinfo.
	name, err := v.displayName(ctx, credential)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrMissingClaims
	}

	return &Profile{Email: info.Email, Name: name}, nil
}

func (v *GoogleVerifier) displayName(ctx context.Context, credential string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.googleapis.com/oauth2/v1/userinfo", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+credential)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", errors.New("userinfo request failed")
	}

	var info oauth2.Userinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}
	return info.Name, nil
}
