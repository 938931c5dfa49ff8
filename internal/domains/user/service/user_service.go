package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"catalog-backend/internal/domains/user"
	"catalog-backend/pkg/jwt"
	"catalog-backend/pkg/logger"
)

type userService struct {
	repo       user.Repository
	jwtManager *jwt.Manager
}

func NewUserService(repo user.Repository, jwtManager *jwt.Manager) user.Service {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.User, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	if exists, err := s.repo.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, "", err
	} else if exists {
		return nil, "", user.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	hash := string(hashed)

	created, err := s.repo.Create(ctx, &user.User{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &hash,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtManager.GenerateAccessToken(created.ID.String(), created.Email)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.User, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, "", user.ErrInvalidCredentials
		}
		return nil, "", err
	}

	// Accounts created through an identity provider carry no hash at all.
	if u.PasswordHash == nil {
		return nil, "", user.ErrPasswordLoginUnavailable
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", user.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, u.ID); err != nil {
		logger.Warn("failed to record last login", err)
	}

	token, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Email)
	if err != nil {
		return nil, "", err
	}

	return u, token, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}
