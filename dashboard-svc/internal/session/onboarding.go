package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"menuqr-dashboard/dashboard-svc/internal/domain"
)

const rollbackTimeout = 10 * time.Second

var (
	ErrTenantNameRequired = errors.New("restaurant name is required")
	ErrTenantNotCreated   = errors.New("tenant creation returned no id")
)

// OnboardingError is returned when the tenant was created but the owner
// account was not. Rollback is set if deleting the tenant failed too.
type OnboardingError struct {
	Tenant   domain.Tenant
	Err      error
	Rollback error
}

func (e *OnboardingError) Error() string {
	msg := fmt.Sprintf("register owner for tenant %s: %v", e.Tenant.ID, e.Err)
	if e.Rollback != nil {
		msg += fmt.Sprintf(" (tenant left behind: %v)", e.Rollback)
	}
	return msg
}

func (e *OnboardingError) Unwrap() error {
	return e.Err
}

// Onboard creates a tenant and its owner account. A failed registration
// deletes the tenant again.
func (s *Store) Onboard(ctx context.Context, tenantReq domain.CreateTenantRequest, reg domain.RegisterRequest) (*domain.AuthResponse, error) {
	if strings.TrimSpace(tenantReq.Name) == "" {
		return nil, ErrTenantNameRequired
	}

	var tenant domain.Tenant
	decoded, err := s.public.JSON(ctx, http.MethodPost, "/tenants", nil, tenantReq, &tenant)
	if err != nil {
		return nil, fmt.Errorf("create tenant: %w", err)
	}
	if !decoded || tenant.ID == "" {
		return nil, ErrTenantNotCreated
	}

	reg.TenantID = tenant.ID
	resp, err := s.Register(ctx, reg)
	if err == nil {
		return resp, nil
	}

	onboardErr := &OnboardingError{Tenant: tenant, Err: err}
	// The rollback runs even when ctx was what made registration fail.
	rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()
	if _, rbErr := s.public.JSON(rbCtx, http.MethodDelete, "/tenants/"+url.PathEscape(tenant.ID), nil, nil, nil); rbErr != nil {
		log.Printf("ERROR: [SESSION] rollback of tenant %s failed: %v", tenant.ID, rbErr)
		onboardErr.Rollback = rbErr
	}
	return nil, onboardErr
}
