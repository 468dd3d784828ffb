package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-crm-api/internal/domain"
	"github.com/go-crm-api/internal/pkg/id"
)

type Service interface {
	Register(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error)
	List(ctx context.Context, limit int, cursor string) ([]domain.Customer, string, error)
}

type customerStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Put(ctx context.Context, c *domain.Customer) error
	ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Customer, string, error)
}

type service struct {
	repo customerStore
}

func NewService(repo customerStore) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, req domain.CreateCustomerRequest) (*domain.Customer, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("customer with this email or phone already exists: %w", domain.ErrConflict)
	}
	if _, err := s.repo.GetByPhone(ctx, req.Phone); err == nil {
		return nil, fmt.Errorf("customer with this email or phone already exists: %w", domain.ErrConflict)
	}
	now := time.Now().UTC()
	c := &domain.Customer{
		CustomerID: id.New(),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context, limit int, cursor string) ([]domain.Customer, string, error) {
	if limit < 1 {
		limit = 50
	}
	return s.repo.ScanPage(ctx, int32(limit), cursor)
}
