package helpers

import (
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestJWTMintAndVerify(t *testing.T) {
	m := NewJWTManager("unit-test-secret", time.Hour)

	token, exp, err := m.Mint("user-123")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if until := time.Until(exp); until < 55*time.Minute || until > time.Hour {
		t.Fatalf("unexpected expiry %v from now", until)
	}

	uid, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if uid != "user-123" {
		t.Fatalf("got subject %q, want user-123", uid)
	}
}

func TestJWTVerifyExpired(t *testing.T) {
	m := NewJWTManager("unit-test-secret", -time.Minute)
	token, _, err := m.Mint("user-123")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := m.Verify(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("got %v, want ErrTokenExpired", err)
	}
}

func TestJWTVerifyTamperedPayload(t *testing.T) {
	m := NewJWTManager("unit-test-secret", time.Hour)
	token, _, err := m.Mint("user-123")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	// Swap the subject in the payload while keeping the original signature.
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", token)
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	forged := strings.Replace(string(payload), "user-123", "user-999", 1)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(forged))

	if _, err := m.Verify(strings.Join(parts, ".")); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("got %v, want ErrBadSignature", err)
	}
}

func TestJWTVerifyWrongSecret(t *testing.T) {
	minter := NewJWTManager("secret-a", time.Hour)
	checker := NewJWTManager("secret-b", time.Hour)

	token, _, err := minter.Mint("user-123")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := checker.Verify(token); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("got %v, want ErrBadSignature", err)
	}
}

func TestJWTVerifyMalformed(t *testing.T) {
	m := NewJWTManager("unit-test-secret", time.Hour)
	for _, garbage := range []string{"", "abc", "a.b.c", "not a token at all"} {
		if _, err := m.Verify(garbage); !errors.Is(err, ErrTokenMalformed) {
			t.Fatalf("Verify(%q): got %v, want ErrTokenMalformed", garbage, err)
		}
	}
}
