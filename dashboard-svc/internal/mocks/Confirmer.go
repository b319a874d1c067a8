package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// Confirmer is a mock type for the Confirmer type
type Confirmer struct {
	mock.Mock
}

// Confirm provides a mock function with given fields: ctx, prompt
func (_m *Confirmer) Confirm(ctx context.Context, prompt string) bool {
	ret := _m.Called(ctx, prompt)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context, string) bool); ok {
		r0 = rf(ctx, prompt)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0
}

// NewConfirmer creates a new instance of Confirmer. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewConfirmer(t interface {
	mock.TestingT
	Cleanup(func())
}) *Confirmer {
	m := &Confirmer{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
