package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req domain.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if u, _ := args.Get(0).(*domain.User); u != nil {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockAuthService) Login(ctx context.Context, req domain.LoginRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func postJSON(h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestRegister_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})
	rr := postJSON(h.Register, "/register", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_ValidationFailure(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})
	// Password below the minimum length never reaches the service.
	rr := postJSON(h.Register, "/register", `{"username":"alice","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Register", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("username already exists: %w", domain.ErrConflict))

	h := NewAuthHandler(svc)
	rr := postJSON(h.Register, "/register", `{"username":"alice","password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertExpectations(t)
}

func TestRegister_Created(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Register", mock.Anything, domain.CreateUserRequest{
		Username: "alice", Password: "secret123",
	}).Return(&domain.User{Username: "alice"}, nil)

	h := NewAuthHandler(svc)
	rr := postJSON(h.Register, "/register", `{"username":"alice","password":"secret123"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	// The response must never carry the stored hash.
	assert.NotContains(t, rr.Body.String(), "password")
	svc.AssertExpectations(t)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Login", mock.Anything, mock.Anything).
		Return("", fmt.Errorf("invalid username or password: %w", domain.ErrUnauthorized))

	h := NewAuthHandler(svc)
	rr := postJSON(h.Login, "/login", `{"username":"alice","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogin_ReturnsBearerToken(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Login", mock.Anything, domain.LoginRequest{
		Username: "alice", Password: "secret123",
	}).Return("signed-token", nil)

	h := NewAuthHandler(svc)
	rr := postJSON(h.Login, "/login", `{"username":"alice","password":"secret123"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var env TokenEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	assert.Equal(t, "signed-token", env.AccessToken)
	assert.Equal(t, "bearer", env.TokenType)
}
