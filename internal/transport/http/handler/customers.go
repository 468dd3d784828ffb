package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-crm-api/internal/application/customer"
	"github.com/go-crm-api/internal/domain"
	"github.com/go-crm-api/internal/pkg/validate"
	"github.com/go-crm-api/internal/transport/http/middleware"
)

// CustomerHandler handles customer registration and listing. Both endpoints
// sit behind the auth middleware.
type CustomerHandler struct {
	svc customer.Service
}

func NewCustomerHandler(svc customer.Service) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.svc.Register(r.Context(), req)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, CustomerEnvelope{
		Message:  fmt.Sprintf("Customer %s registered successfully!", c.Name),
		Customer: c,
	})
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	customers, nextCursor, err := h.svc.List(r.Context(), limit, r.URL.Query().Get("cursor"))
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, CustomerListEnvelope{
		Message:    fmt.Sprintf("Hello, %s! Here is the customer list:", subject),
		Customers:  customers,
		NextCursor: nextCursor,
	})
}
