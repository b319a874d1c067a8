package mocks

import (
	"menuqr-dashboard/dashboard-svc/internal/controller"

	mock "github.com/stretchr/testify/mock"
)

// Notifier is a mock type for the Notifier type
type Notifier struct {
	mock.Mock
}

// Notify provides a mock function with given fields: toast
func (_m *Notifier) Notify(toast controller.Toast) {
	_m.Called(toast)
}

// NewNotifier creates a new instance of Notifier. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
