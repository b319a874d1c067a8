package mocks

import (
	"context"

	"menuqr-dashboard/dashboard-svc/internal/domain"

	mock "github.com/stretchr/testify/mock"
)

// ActivityRecorder is a mock type for the ActivityRecorder type
type ActivityRecorder struct {
	mock.Mock
}

// Record provides a mock function with given fields: ctx, activity
func (_m *ActivityRecorder) Record(ctx context.Context, activity domain.Activity) error {
	ret := _m.Called(ctx, activity)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Activity) error); ok {
		r0 = rf(ctx, activity)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewActivityRecorder creates a new instance of ActivityRecorder. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewActivityRecorder(t interface {
	mock.TestingT
	Cleanup(func())
}) *ActivityRecorder {
	m := &ActivityRecorder{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
