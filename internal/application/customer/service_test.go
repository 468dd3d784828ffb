package customer

import (
	"context"
	"errors"
	"testing"

	"github.com/go-crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCustomerStore struct{ mock.Mock }

func (m *mockCustomerStore) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	args := m.Called(ctx, email)
	if c, _ := args.Get(0).(*domain.Customer); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCustomerStore) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	if c, _ := args.Get(0).(*domain.Customer); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCustomerStore) Put(ctx context.Context, c *domain.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCustomerStore) ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Customer, string, error) {
	args := m.Called(ctx, limit, cursor)
	return args.Get(0).([]domain.Customer), args.String(1), args.Error(2)
}

func baseReq() domain.CreateCustomerRequest {
	return domain.CreateCustomerRequest{
		Name:  "Acme Corp",
		Email: "contact@acme.test",
		Phone: "+15551234567",
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	cs := &mockCustomerStore{}
	cs.On("GetByEmail", mock.Anything, "contact@acme.test").Return(&domain.Customer{}, nil)

	svc := NewService(cs)
	_, err := svc.Register(context.Background(), baseReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	cs.AssertExpectations(t)
}

func TestRegister_DuplicatePhone(t *testing.T) {
	cs := &mockCustomerStore{}
	cs.On("GetByEmail", mock.Anything, "contact@acme.test").Return(nil, domain.ErrNotFound)
	cs.On("GetByPhone", mock.Anything, "+15551234567").Return(&domain.Customer{}, nil)

	svc := NewService(cs)
	_, err := svc.Register(context.Background(), baseReq())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	cs.AssertExpectations(t)
}

func TestRegister_HappyPath(t *testing.T) {
	cs := &mockCustomerStore{}
	cs.On("GetByEmail", mock.Anything, "contact@acme.test").Return(nil, domain.ErrNotFound)
	cs.On("GetByPhone", mock.Anything, "+15551234567").Return(nil, domain.ErrNotFound)
	cs.On("Put", mock.Anything, mock.AnythingOfType("*domain.Customer")).Return(nil)

	svc := NewService(cs)
	c, err := svc.Register(context.Background(), baseReq())

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", c.Name)
	assert.NotEmpty(t, c.CustomerID)
	cs.AssertExpectations(t)
}

func TestList_DefaultsLimit(t *testing.T) {
	cs := &mockCustomerStore{}
	cs.On("ScanPage", mock.Anything, int32(50), "").Return([]domain.Customer{}, "", nil)

	svc := NewService(cs)
	_, _, err := svc.List(context.Background(), 0, "")

	require.NoError(t, err)
	cs.AssertExpectations(t)
}

func TestList_PropagatesStoreError(t *testing.T) {
	cs := &mockCustomerStore{}
	storeErr := errors.New("dynamo error")
	cs.On("ScanPage", mock.Anything, int32(10), "abc").Return([]domain.Customer(nil), "", storeErr)

	svc := NewService(cs)
	_, _, err := svc.List(context.Background(), 10, "abc")

	require.Error(t, err)
	assert.Equal(t, storeErr, err)
}
