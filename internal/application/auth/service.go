package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-crm-api/internal/domain"
	"github.com/go-crm-api/internal/pkg/id"
	"github.com/go-crm-api/internal/pkg/password"
)

type Service interface {
	Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (bearer string, err error)
}

type userStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

type tokenIssuer interface {
	Issue(subject string) (string, error)
}

type service struct {
	repo   userStore
	tokens tokenIssuer
}

type ServiceDeps struct {
	UserRepo    userStore
	TokenIssuer tokenIssuer
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.UserRepo, tokens: deps.TokenIssuer}
}

func (s *service) Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("username already exists: %w", domain.ErrConflict)
	}
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Username:     req.Username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and returns a signed bearer token.
// An unknown username and a wrong password produce the identical error, so a
// caller cannot probe which usernames exist.
func (s *service) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		return "", fmt.Errorf("invalid username or password: %w", domain.ErrUnauthorized)
	}
	ok, err := password.Verify(req.Password, u.PasswordHash)
	if err != nil {
		// Stored hash is corrupt. Never happens for hashes we produced.
		slog.Error("stored password hash is unparseable", "username", u.Username, "err", err)
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", fmt.Errorf("invalid username or password: %w", domain.ErrUnauthorized)
	}
	return s.tokens.Issue(u.Username)
}
