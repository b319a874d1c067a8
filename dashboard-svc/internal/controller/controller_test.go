package controller_test

import (
	"sync"
	"testing"

	"menuqr-dashboard/dashboard-svc/internal/controller"
	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/mocks"

	"github.com/stretchr/testify/mock"
)

var owner = &domain.User{ID: "u1", Email: "chef@example.com", Role: "OWNER", TenantID: "t1"}

type fixture struct {
	deps     controller.Deps
	confirm  *mocks.Confirmer
	recorder *mocks.ActivityRecorder

	mu     sync.Mutex
	toasts []controller.Toast
}

func newFixture(t *testing.T, user *domain.User) *fixture {
	t.Helper()
	f := &fixture{
		confirm:  mocks.NewConfirmer(t),
		recorder: mocks.NewActivityRecorder(t),
	}

	session := mocks.NewSession(t)
	session.On("CurrentUser").Return(user).Maybe()

	notifier := mocks.NewNotifier(t)
	notifier.On("Notify", mock.Anything).Run(func(args mock.Arguments) {
		f.mu.Lock()
		f.toasts = append(f.toasts, args.Get(0).(controller.Toast))
		f.mu.Unlock()
	}).Maybe()

	f.deps = controller.Deps{
		Session:   session,
		Notifier:  notifier,
		Confirmer: f.confirm,
		Recorder:  f.recorder,
	}
	return f
}

func (f *fixture) errorToasts() []controller.Toast {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []controller.Toast
	for _, toast := range f.toasts {
		if toast.Variant == controller.ToastError {
			out = append(out, toast)
		}
	}
	return out
}

func (f *fixture) expectActivity(action, entityID string) {
	f.recorder.On("Record", mock.Anything, mock.MatchedBy(func(a domain.Activity) bool {
		return a.Action == action && a.EntityID == entityID && a.TenantID == "t1" && a.UserID == "u1"
	})).Return(nil).Once()
}
