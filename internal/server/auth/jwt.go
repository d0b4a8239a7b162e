// Package auth issues and validates the HS256 bearer tokens handed out at
// login, and hashes user passwords.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/recipekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload. Subject and Name both carry the username;
// Name is kept for clients that read the display claim.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role string `json:"role"`
}

// TokenManager mints and validates access tokens with a single symmetric key.
type TokenManager struct {
	secretKey []byte
	validity  time.Duration
	now       func() time.Time
}

// NewTokenManager returns a TokenManager using the wall clock.
func NewTokenManager(secretKey []byte, validity time.Duration) *TokenManager {
	return NewTokenManagerWithClock(secretKey, validity, time.Now)
}

// NewTokenManagerWithClock is NewTokenManager with an injectable clock.
func NewTokenManagerWithClock(secretKey []byte, validity time.Duration, now func() time.Time) *TokenManager {
	return &TokenManager{secretKey: secretKey, validity: validity, now: now}
}

// GenerateToken issues a token for userName with role User, valid from now
// for the configured validity period.
func (m *TokenManager) GenerateToken(userName string) (string, error) {
	issuedAt := m.now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userName,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.validity)),
		},
		Name: userName,
		Role: common.RoleUser,
	})

	tokenString, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString and returns its
// claims. Expired tokens yield common.ErrTokenExpired; every other failure
// yields common.ErrInvalidToken.
func (m *TokenManager) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
