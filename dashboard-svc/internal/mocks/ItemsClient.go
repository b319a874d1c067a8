package mocks

import (
	"context"

	"menuqr-dashboard/dashboard-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// ItemsClient is a mock type for the ItemsClient type
type ItemsClient struct {
	mock.Mock
}

// GetItems provides a mock function with given fields: ctx, filters
func (_m *ItemsClient) GetItems(ctx context.Context, filters domain.ItemFilters) ([]domain.Item, error) {
	ret := _m.Called(ctx, filters)

	var r0 []domain.Item
	if rf, ok := ret.Get(0).(func(context.Context, domain.ItemFilters) []domain.Item); ok {
		r0 = rf(ctx, filters)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Item)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.ItemFilters) error); ok {
		r1 = rf(ctx, filters)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// SearchItems provides a mock function with given fields: ctx, q
func (_m *ItemsClient) SearchItems(ctx context.Context, q string) ([]domain.Item, error) {
	ret := _m.Called(ctx, q)

	var r0 []domain.Item
	if rf, ok := ret.Get(0).(func(context.Context, string) []domain.Item); ok {
		r0 = rf(ctx, q)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Item)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, q)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateItem provides a mock function with given fields: ctx, req
func (_m *ItemsClient) CreateItem(ctx context.Context, req domain.ItemRequest) (*domain.Item, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.Item
	if rf, ok := ret.Get(0).(func(context.Context, domain.ItemRequest) *domain.Item); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Item)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.ItemRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateItem provides a mock function with given fields: ctx, id, req
func (_m *ItemsClient) UpdateItem(ctx context.Context, id string, req domain.ItemRequest) (*domain.Item, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *domain.Item
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.ItemRequest) *domain.Item); ok {
		r0 = rf(ctx, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Item)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.ItemRequest) error); ok {
		r1 = rf(ctx, id, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteItem provides a mock function with given fields: ctx, id
func (_m *ItemsClient) DeleteItem(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ToggleStock provides a mock function with given fields: ctx, id
func (_m *ItemsClient) ToggleStock(ctx context.Context, id string) (*domain.Item, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Item
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.Item); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Item)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetItemStats provides a mock function with given fields: ctx
func (_m *ItemsClient) GetItemStats(ctx context.Context) (*domain.ItemStats, error) {
	ret := _m.Called(ctx)

	var r0 *domain.ItemStats
	if rf, ok := ret.Get(0).(func(context.Context) *domain.ItemStats); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.ItemStats)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewItemsClient creates a new instance of ItemsClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewItemsClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *ItemsClient {
	m := &ItemsClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
