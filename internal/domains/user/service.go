package user

import (
	"context"

	"github.com/google/uuid"
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*User, string, error)
	Login(ctx context.Context, req *LoginRequest) (*User, string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
}
