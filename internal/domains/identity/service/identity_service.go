package service

import (
	"context"
	"errors"

	identitydomain "catalog-backend/internal/domains/identity"
	"catalog-backend/internal/domains/user"
	"catalog-backend/internal/infrastructure/identity"
	"catalog-backend/pkg/jwt"
	"catalog-backend/pkg/logger"
)

const providerName = "google"

type identityService struct {
	verifier   identity.TokenVerifier
	userRepo   user.Repository
	jwtManager *jwt.Manager
	redirect   string
}

func NewIdentityService(verifier identity.TokenVerifier, userRepo user.Repository, jwtManager *jwt.Manager, redirect string) identitydomain.Service {
	return &identityService{
		verifier:   verifier,
		userRepo:   userRepo,
		jwtManager: jwtManager,
		redirect:   redirect,
	}
}

// TokenLogin verifies the provider token, then finds or creates the
// matching account. Provider-created accounts have no password hash.
func (s *identityService) TokenLogin(ctx context.Context, req *identitydomain.TokenLoginRequest) (*identitydomain.TokenLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	info, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByEmail(ctx, info.Email)
	if errors.Is(err, user.ErrUserNotFound) {
		provider := providerName
		subject := info.Subject
		name := info.Name
		if name == "" {
			name = info.Email
		}

		u, err = s.userRepo.Create(ctx, &user.User{
			Email:           info.Email,
			FullName:        name,
			Provider:        &provider,
			ProviderSubject: &subject,
		})
		if errors.Is(err, user.ErrEmailTaken) {
			// Lost a race with a concurrent first login; the row is there now.
			u, err = s.userRepo.GetByEmail(ctx, info.Email)
		}
	}
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateLastLogin(ctx, u.ID); err != nil {
		logger.Warn("failed to record last login", err)
	}

	token, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, err
	}

	return &identitydomain.TokenLoginResponse{
		Success:     true,
		Message:     "signed in",
		Redirect:    s.redirect,
		AccessToken: token,
	}, nil
}
