package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidChildToken = errors.New("invalid child token")

// ChildTokenIssuer mints and validates the signed tokens used for child
// sessions. Children have no passwords, so their sessions are stateless
// HS256 tokens carrying the child id, rather than database-backed
// sessions like parents get.
type ChildTokenIssuer struct {
	secret   []byte
	lifetime time.Duration
}

// NewChildTokenIssuer creates an issuer signing with secret; tokens
// expire after lifetime.
func NewChildTokenIssuer(secret string, lifetime time.Duration) *ChildTokenIssuer {
	return &ChildTokenIssuer{secret: []byte(secret), lifetime: lifetime}
}

// Issue creates a signed token for the given child id.
func (i *ChildTokenIssuer) Issue(childID int64) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(childID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.lifetime)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign child token: %w", err)
	}
	return signed, nil
}

// Validate parses a token and returns the child id it was issued for.
func (i *ChildTokenIssuer) Validate(tokenString string) (int64, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))

	claims := &jwt.RegisteredClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidChildToken
	}

	childID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidChildToken
	}
	return childID, nil
}
