// Package session signs and verifies the staff session tokens carried in the
// auth_token cookie.
package session

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/user"
	"restaurant/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long a session stays valid.
const DefaultTTL = 24 * time.Hour

const issuer = "restaurant"

var (
	ErrSecretRequired = errors.New("session secret is required")
	ErrInvalidSession = errors.New("invalid session")
)

// Claims is the payload of a session token. Subject holds the user id.
type Claims struct {
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTIssuer issues HS256 tokens and implements ports.SessionIssuer.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrSecretRequired
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (i *JWTIssuer) Issue(u *user.User) (ports.Session, error) {
	if err := u.Validate(); err != nil {
		return ports.Session{}, err
	}

	issuedAt := i.now().UTC()
	expiresAt := issuedAt.Add(i.ttl)
	claims := Claims{
		Email: u.Email(),
		Role:  u.Role(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   u.ID().String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return ports.Session{}, fmt.Errorf("sign session: %w", err)
	}

	return ports.Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Parse verifies the signature and expiry of token. Every failure wraps
// ErrInvalidSession.
func (i *JWTIssuer) Parse(token string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	return claims, nil
}
