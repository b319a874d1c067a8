package mocks

import (
	"context"

	"menuqr-dashboard/dashboard-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// PublicMenu is a mock type for the PublicMenu type
type PublicMenu struct {
	mock.Mock
}

// GetPublicMenu provides a mock function with given fields: ctx, slug
func (_m *PublicMenu) GetPublicMenu(ctx context.Context, slug string) (*domain.PublicMenu, error) {
	ret := _m.Called(ctx, slug)

	var r0 *domain.PublicMenu
	if rf, ok := ret.Get(0).(func(context.Context, string) *domain.PublicMenu); ok {
		r0 = rf(ctx, slug)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PublicMenu)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, slug)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewPublicMenu creates a new instance of PublicMenu. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPublicMenu(t interface {
	mock.TestingT
	Cleanup(func())
}) *PublicMenu {
	m := &PublicMenu{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
