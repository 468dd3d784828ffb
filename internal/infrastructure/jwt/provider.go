package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-crm-api/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Verification failures, in decreasing order of structural soundness.
// The HTTP layer collapses all of them to 401; they exist so the middleware
// can log what actually went wrong.
var (
	ErrTokenMalformed        = errors.New("malformed token")
	ErrTokenSignatureInvalid = errors.New("invalid token signature")
	ErrTokenExpired          = errors.New("token expired")
)

// Provider signs and verifies HS256 JWTs. Tokens are stateless: any process
// holding the same secret can verify a token issued by any other, so there is
// no server-side session store and no revocation.
type Provider struct {
	secret []byte
	expiry time.Duration
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	expiry := cfg.JWTExpiry
	if expiry <= 0 {
		expiry = 30 * time.Minute
	}
	return &Provider{secret: []byte(cfg.JWTSecret), expiry: expiry}, nil
}

// Issue signs a token for subject using the configured default expiry.
func (p *Provider) Issue(subject string) (string, error) {
	return p.IssueWithTTL(subject, p.expiry)
}

// IssueWithTTL signs a token for subject that expires ttl from now.
func (p *Provider) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Verify parses and verifies a compact token, returning its subject.
// The signature covers header and payload, so altering either fails with
// ErrTokenSignatureInvalid; a structurally broken token fails with
// ErrTokenMalformed; a verified but stale token fails with ErrTokenExpired.
func (p *Provider) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) { return p.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", fmt.Errorf("%w: %v", ErrTokenSignatureInvalid, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", fmt.Errorf("%w: %v", ErrTokenExpired, err)
		default:
			return "", fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		}
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject claim", ErrTokenMalformed)
	}
	return claims.Subject, nil
}
