package mocks

import (
	"context"

	"menuqr-dashboard/dashboard-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// OrdersClient is a mock type for the OrdersClient type
type OrdersClient struct {
	mock.Mock
}

// GetOrders provides a mock function with given fields: ctx, filters
func (_m *OrdersClient) GetOrders(ctx context.Context, filters domain.OrderFilters) ([]domain.Order, error) {
	ret := _m.Called(ctx, filters)

	var r0 []domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, domain.OrderFilters) []domain.Order); ok {
		r0 = rf(ctx, filters)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.OrderFilters) error); ok {
		r1 = rf(ctx, filters)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetOrderStats provides a mock function with given fields: ctx, filters
func (_m *OrdersClient) GetOrderStats(ctx context.Context, filters domain.OrderFilters) (*domain.OrderStats, error) {
	ret := _m.Called(ctx, filters)

	var r0 *domain.OrderStats
	if rf, ok := ret.Get(0).(func(context.Context, domain.OrderFilters) *domain.OrderStats); ok {
		r0 = rf(ctx, filters)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.OrderStats)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.OrderFilters) error); ok {
		r1 = rf(ctx, filters)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateOrder provides a mock function with given fields: ctx, id, req
func (_m *OrdersClient) UpdateOrder(ctx context.Context, id string, req domain.UpdateOrderRequest) (*domain.Order, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.UpdateOrderRequest) *domain.Order); ok {
		r0 = rf(ctx, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.UpdateOrderRequest) error); ok {
		r1 = rf(ctx, id, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateOrderStatus provides a mock function with given fields: ctx, id, status, note
func (_m *OrdersClient) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus, note string) (*domain.Order, error) {
	ret := _m.Called(ctx, id, status, note)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.OrderStatus, string) *domain.Order); ok {
		r0 = rf(ctx, id, status, note)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.OrderStatus, string) error); ok {
		r1 = rf(ctx, id, status, note)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CancelOrder provides a mock function with given fields: ctx, id, reason
func (_m *OrdersClient) CancelOrder(ctx context.Context, id string, reason string) (*domain.Order, error) {
	ret := _m.Called(ctx, id, reason)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, string, string) *domain.Order); ok {
		r0 = rf(ctx, id, reason)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, string) error); ok {
		r1 = rf(ctx, id, reason)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewOrdersClient creates a new instance of OrdersClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrdersClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrdersClient {
	m := &OrdersClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
