// Package session issues and verifies signed session tokens.
//
// Tokens are HS256 JWTs carrying the user id, display fields and role. The
// role is resolved from the user record at issue time so the policy layer
// never needs to consult the database to decide admin access.
//
// Verification fails closed: a malformed, expired or tampered token is
// reported the same way as a missing one. Callers that require
// authentication convert that into a 401; anonymous read paths simply carry
// no identity.
package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/folioboard/folioboard/pkg/identity"
	"github.com/folioboard/folioboard/pkg/model"
)

// DefaultTTL is the session lifetime when the config does not override it.
const DefaultTTL = 24 * time.Hour

// ErrInvalidToken is returned for any token that does not verify. The cause
// is deliberately not distinguished.
var ErrInvalidToken = errors.New("invalid session token")

// Issuer signs and verifies session tokens with a shared HMAC key.
type Issuer struct {
	key []byte
	ttl time.Duration
}

// NewIssuer creates an Issuer. A zero ttl means DefaultTTL.
func NewIssuer(key []byte, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{key: key, ttl: ttl}
}

type claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Image string `json:"image,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Issue creates a signed session token for a user.
func (i *Issuer) Issue(user *model.User) (string, error) {
	now := time.Now()
	c := claims{
		Name:  user.Name,
		Email: user.Email,
		Image: user.Image,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(i.key)
}

// Verify parses and validates a session token, returning the identity it
// carries. Any failure yields ErrInvalidToken.
func (i *Issuer) Verify(tokenString string) (*identity.Identity, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid || c.Subject == "" {
		return nil, ErrInvalidToken
	}

	id := &identity.Identity{
		UserID: c.Subject,
		Name:   c.Name,
		Email:  c.Email,
		Image:  c.Image,
		Role:   c.Role,
	}
	if c.IssuedAt != nil {
		id.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		id.ExpiresAt = c.ExpiresAt.Time
	}
	return id, nil
}
