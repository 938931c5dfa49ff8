package identity

import (
	"context"
)

// Service exchanges an external provider's ID token for a catalog session.
type Service interface {
	TokenLogin(ctx context.Context, req *TokenLoginRequest) (*TokenLoginResponse, error)
}
