package mocks

import (
	"menuqr-dashboard/dashboard-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// Session is a mock type for the Session type
type Session struct {
	mock.Mock
}

// CurrentUser provides a mock function with given fields: 
func (_m *Session) CurrentUser() *domain.User {
	ret := _m.Called()

	var r0 *domain.User
	if rf, ok := ret.Get(0).(func() *domain.User); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.User)
	}

	return r0
}

// NewSession creates a new instance of Session. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewSession(t interface {
	mock.TestingT
	Cleanup(func())
}) *Session {
	m := &Session{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
