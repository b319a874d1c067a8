package mocks

import (
	"context"

	"menuqr-dashboard/dashboard-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// PublicOrders is a mock type for the PublicOrders type
type PublicOrders struct {
	mock.Mock
}

// CreatePublicOrder provides a mock function with given fields: ctx, slug, req
func (_m *PublicOrders) CreatePublicOrder(ctx context.Context, slug string, req domain.CreateOrderRequest) (*domain.Order, error) {
	ret := _m.Called(ctx, slug, req)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.CreateOrderRequest) *domain.Order); ok {
		r0 = rf(ctx, slug, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.CreateOrderRequest) error); ok {
		r1 = rf(ctx, slug, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetPublicOrderStatus provides a mock function with given fields: ctx, slug, orderNumber
func (_m *PublicOrders) GetPublicOrderStatus(ctx context.Context, slug string, orderNumber string) (*domain.PublicOrderStatus, error) {
	ret := _m.Called(ctx, slug, orderNumber)

	var r0 *domain.PublicOrderStatus
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *domain.PublicOrderStatus); ok {
		r0 = rf(ctx, slug, orderNumber)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PublicOrderStatus)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, slug, orderNumber)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewPublicOrders creates a new instance of PublicOrders. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPublicOrders(t interface {
	mock.TestingT
	Cleanup(func())
}) *PublicOrders {
	m := &PublicOrders{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
