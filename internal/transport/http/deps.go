package http

import (
	"context"

	"github.com/go-crm-api/internal/domain"
	jwtinfra "github.com/go-crm-api/internal/infrastructure/jwt"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

// CustomerRepository is the minimal interface the router requires from a customer store.
type CustomerRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Put(ctx context.Context, c *domain.Customer) error
	ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Customer, string, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo     UserRepository
	CustomerRepo CustomerRepository
	JWTProvider  *jwtinfra.Provider
}
