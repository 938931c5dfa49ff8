package identity

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrInvalidToken means the provider rejected the token or its claims
	// failed a local check (audience, expiry).
	ErrInvalidToken = errors.New("identity token is invalid")

	// ErrVerifierUnavailable means the provider could not be reached.
	ErrVerifierUnavailable = errors.New("identity provider is unavailable")
)

// TokenInfo is the subset of provider claims the catalog cares about.
type TokenInfo struct {
	Subject string
	Email   string
	Name    string
	Expiry  time.Time
}

// TokenVerifier checks an ID token against an external identity provider
// and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*TokenInfo, error)
}
