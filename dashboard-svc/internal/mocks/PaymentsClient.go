package mocks

import (
	"context"

	"menuqr-dashboard/dashboard-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// PaymentsClient is a mock type for the PaymentsClient type
type PaymentsClient struct {
	mock.Mock
}

// GetPayments provides a mock function with given fields: ctx, filters
func (_m *PaymentsClient) GetPayments(ctx context.Context, filters domain.PaymentFilters) ([]domain.Payment, error) {
	ret := _m.Called(ctx, filters)

	var r0 []domain.Payment
	if rf, ok := ret.Get(0).(func(context.Context, domain.PaymentFilters) []domain.Payment); ok {
		r0 = rf(ctx, filters)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Payment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.PaymentFilters) error); ok {
		r1 = rf(ctx, filters)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetPaymentStats provides a mock function with given fields: ctx, filters
func (_m *PaymentsClient) GetPaymentStats(ctx context.Context, filters domain.PaymentFilters) (*domain.PaymentStats, error) {
	ret := _m.Called(ctx, filters)

	var r0 *domain.PaymentStats
	if rf, ok := ret.Get(0).(func(context.Context, domain.PaymentFilters) *domain.PaymentStats); ok {
		r0 = rf(ctx, filters)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PaymentStats)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.PaymentFilters) error); ok {
		r1 = rf(ctx, filters)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreatePayment provides a mock function with given fields: ctx, req
func (_m *PaymentsClient) CreatePayment(ctx context.Context, req domain.CreatePaymentRequest) (*domain.Payment, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.Payment
	if rf, ok := ret.Get(0).(func(context.Context, domain.CreatePaymentRequest) *domain.Payment); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Payment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.CreatePaymentRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// RefundPayment provides a mock function with given fields: ctx, id, req
func (_m *PaymentsClient) RefundPayment(ctx context.Context, id string, req domain.RefundRequest) (*domain.Payment, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *domain.Payment
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.RefundRequest) *domain.Payment); ok {
		r0 = rf(ctx, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Payment)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.RefundRequest) error); ok {
		r1 = rf(ctx, id, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewPaymentsClient creates a new instance of PaymentsClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPaymentsClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentsClient {
	m := &PaymentsClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
