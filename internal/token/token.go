// Package token issues the signed access tokens handed out at sign-in.
// The token is tamper-evident but otherwise opaque to the server:
// authorization looks sessions up by token string, it never trusts the
// embedded claims.
package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer signs access tokens with a process-wide secret.
type Issuer struct {
	secret []byte
}

// NewIssuer constructs an Issuer. The secret must be non-empty.
func NewIssuer(secret string) (*Issuer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token secret is required")
	}
	return &Issuer{secret: []byte(secret)}, nil
}

// Issue produces a signed token string encoding the subject and the
// validity window. A random token ID makes every issued token unique,
// including tokens issued to the same subject within the same second.
func (i *Issuer) Issue(subject string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(i.secret)
}
