package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

var testClaims = TokenClaims{
	UserID:     7,
	Username:   "a1",
	Role:       "admin",
	BuildingID: 3,
}

func TestNewAccessToken_RoundTrip(t *testing.T) {
	tok, err := NewAccessToken(testSecret, testClaims, 24)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if tok.Token == "" {
		t.Fatal("empty token string")
	}

	got, err := ParseAccessToken(testSecret, tok.Token)
	if err != nil {
		t.Fatalf("ParseAccessToken: %v", err)
	}
	if got != testClaims {
		t.Errorf("claims round trip: got %+v, want %+v", got, testClaims)
	}
}

func TestNewAccessToken_ExpirySetToTTL(t *testing.T) {
	before := time.Now().UTC()
	tok, err := NewAccessToken(testSecret, testClaims, 24)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	lo := before.Add(24*time.Hour - time.Minute)
	hi := time.Now().UTC().Add(24*time.Hour + time.Minute)
	if tok.Exp.Before(lo) || tok.Exp.After(hi) {
		t.Errorf("expiry %v not within 24h of issuance", tok.Exp)
	}
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	tok, err := NewAccessToken(testSecret, testClaims, 1)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if _, err := ParseAccessToken("other-secret", tok.Token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}

func TestParseAccessToken_Garbage(t *testing.T) {
	if _, err := ParseAccessToken(testSecret, "not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	// Hand-craft a token whose exp is in the past, signed with the right secret.
	claims := jwt.MapClaims{
		"sub":         uint64(7),
		"username":    "a1",
		"role":        "admin",
		"building_id": uint64(3),
		"exp":         time.Now().UTC().Add(-time.Hour).Unix(),
		"iat":         time.Now().UTC().Add(-25 * time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAccessToken(testSecret, raw); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("got %v, want ErrTokenExpired", err)
	}
}

func TestParseAccessToken_MissingSubject(t *testing.T) {
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  time.Now().UTC().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ParseAccessToken(testSecret, raw); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("got %v, want ErrTokenInvalid", err)
	}
}
