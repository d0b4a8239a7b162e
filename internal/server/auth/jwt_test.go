package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	m := NewTokenManager(testSecret, time.Hour)

	tok, err := m.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := m.ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Subject != "alice" || claims.Name != "alice" {
		t.Fatalf("identity mismatch: sub=%q name=%q", claims.Subject, claims.Name)
	}
	if claims.Role != common.RoleUser {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, common.RoleUser)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("lifetime mismatch: got %v want 1h", got)
	}
}

func TestParseToken_ExpiryWindow(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issued}
	m := NewTokenManagerWithClock(testSecret, time.Hour, clock.Now)

	tok, err := m.GenerateToken("alice")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	clock.t = issued.Add(59 * time.Minute)
	if _, err := m.ParseToken(tok); err != nil {
		t.Fatalf("token must be valid at T+59m, got %v", err)
	}

	clock.t = issued.Add(61 * time.Minute)
	if _, err := m.ParseToken(tok); !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired at T+61m, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenManager([]byte("right-secret-right-secret-right-secret"), time.Hour).GenerateToken("bob")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = NewTokenManager(testSecret, time.Hour).ParseToken(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for bad signature, got %v", err)
	}
}

func TestParseToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager(testSecret, time.Hour).ParseToken("not.a.jwt")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken for malformed token, got %v", err)
	}
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "mallory",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Name: "mallory",
		Role: common.RoleUser,
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign HS512: %v", err)
	}
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	m := NewTokenManager(testSecret, time.Hour)
	for name, tok := range map[string]string{"HS512": hs512, "none": none} {
		if _, err := m.ParseToken(tok); !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("%s: expected common.ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestParseToken_RequiresExpiryAndSubject(t *testing.T) {
	t.Parallel()

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
	}).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString(testSecret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	m := NewTokenManager(testSecret, time.Hour)
	if _, err := m.ParseToken(noExp); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("missing exp: expected common.ErrInvalidToken, got %v", err)
	}
	if _, err := m.ParseToken(noSub); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("missing sub: expected common.ErrInvalidToken, got %v", err)
	}
}
