package mocks

import (
	"context"

	"menuqr-dashboard/dashboard-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// PublicPayments is a mock type for the PublicPayments type
type PublicPayments struct {
	mock.Mock
}

// GetPublicPaymentInfo provides a mock function with given fields: ctx, slug
func (_m *PublicPayments) GetPublicPaymentInfo(ctx context.Context, slug string) (*domain.PublicPaymentInfo, error) {
	ret := _m.Called(ctx, slug)

	var r0 *domain.PublicPaymentInfo
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.PublicPaymentInfo); ok {
		r0 = rf(ctx, slug)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PublicPaymentInfo)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, slug)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// ConfirmManualPayment provides a mock function with given fields: ctx, slug, req
func (_m *PublicPayments) ConfirmManualPayment(ctx context.Context, slug string, req domain.ManualPaymentRequest) (*domain.Payment, error) {
	ret := _m.Called(ctx, slug, req)

	var r0 *domain.Payment
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.ManualPaymentRequest) *domain.Payment); ok {
		r0 = rf(ctx, slug, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Payment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.ManualPaymentRequest) error); ok {
		r1 = rf(ctx, slug, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetPublicPaymentStatus provides a mock function with given fields: ctx, slug, transactionID
func (_m *PublicPayments) GetPublicPaymentStatus(ctx context.Context, slug string, transactionID string) (*domain.PublicPaymentStatus, error) {
	ret := _m.Called(ctx, slug, transactionID)

	var r0 *domain.PublicPaymentStatus
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *domain.PublicPaymentStatus); ok {
		r0 = rf(ctx, slug, transactionID)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PublicPaymentStatus)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, slug, transactionID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewPublicPayments creates a new instance of PublicPayments. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPublicPayments(t interface {
	mock.TestingT
	Cleanup(func())
}) *PublicPayments {
	m := &PublicPayments{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
