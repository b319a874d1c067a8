package mocks

import (
	"context"

	"menuqr-dashboard/dashboard-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// CategoriesClient is a mock type for the CategoriesClient type
type CategoriesClient struct {
	mock.Mock
}

// GetCategories provides a mock function with given fields: ctx, filters
func (_m *CategoriesClient) GetCategories(ctx context.Context, filters domain.CategoryFilters) ([]domain.Category, error) {
	ret := _m.Called(ctx, filters)

	var r0 []domain.Category
	if rf, ok := ret.Get(0).(func(context.Context, domain.CategoryFilters) []domain.Category); ok {
		r0 = rf(ctx, filters)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.CategoryFilters) error); ok {
		r1 = rf(ctx, filters)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// CreateCategory provides a mock function with given fields: ctx, req
func (_m *CategoriesClient) CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.Category, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.Category
	if rf, ok := ret.Get(0).(func(context.Context, domain.CategoryRequest) *domain.Category); ok {
		r0 = rf(ctx, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Category)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, domain.CategoryRequest) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// UpdateCategory provides a mock function with given fields: ctx, id, req
func (_m *CategoriesClient) UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (*domain.Category, error) {
	ret := _m.Called(ctx, id, req)

	var r0 *domain.Category
	if rf, ok := ret.Get(0).(func(context.Context, string, domain.CategoryRequest) *domain.Category); ok {
		r0 = rf(ctx, id, req)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Category)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, domain.CategoryRequest) error); ok {
		r1 = rf(ctx, id, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// DeleteCategory provides a mock function with given fields: ctx, id
func (_m *CategoriesClient) DeleteCategory(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// ReorderCategories provides a mock function with given fields: ctx, order
func (_m *CategoriesClient) ReorderCategories(ctx context.Context, order []domain.ReorderEntry) ([]domain.Category, error) {
	ret := _m.Called(ctx, order)

	var r0 []domain.Category
	if rf, ok := ret.Get(0).(func(context.Context, []domain.ReorderEntry) []domain.Category); ok {
		r0 = rf(ctx, order)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []domain.ReorderEntry) error); ok {
		r1 = rf(ctx, order)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewCategoriesClient creates a new instance of CategoriesClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCategoriesClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *CategoriesClient {
	m := &CategoriesClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
