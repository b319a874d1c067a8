package controller

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"menuqr-dashboard/dashboard-svc/internal/domain"
)

var (
	ErrNotConfirmed = errors.New("action not confirmed")
	ErrPageClosed   = errors.New("page closed")
)

// page carries what every dashboard page shares: a cancellable scope, the
// loading flag and a generation counter that lets late list responses be
// dropped.
type page struct {
	deps   Deps
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	gen     uint64
	loading int
}

func (p *page) init(parent context.Context, deps Deps) {
	p.deps = deps
	p.ctx, p.cancel = context.WithCancel(parent)
}

// Close aborts in-flight requests. Responses arriving afterwards are ignored.
func (p *page) Close() {
	p.cancel()
}

func (p *page) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading > 0
}

func (p *page) begin() func() {
	p.mu.Lock()
	p.loading++
	p.mu.Unlock()
	return func() {
		p.mu.Lock()
		p.loading--
		p.mu.Unlock()
	}
}

func (p *page) user() *domain.User {
	if p.deps.Session == nil {
		return nil
	}
	return p.deps.Session.CurrentUser()
}

func (p *page) nextGen() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	return p.gen
}

// scope derives a request context that also ends when the page is closed.
func (p *page) scope(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if p.ctx.Err() != nil {
		return nil, nil, ErrPageClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(p.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}, nil
}

// current reports whether gen is still the latest list request. Callers hold mu.
func (p *page) current(gen uint64) bool {
	return gen == p.gen && p.ctx.Err() == nil
}

func (p *page) confirm(ctx context.Context, prompt string) bool {
	if p.deps.Confirmer == nil {
		return false
	}
	return p.deps.Confirmer.Confirm(ctx, prompt)
}

func (p *page) notify(toast Toast) {
	if p.deps.Notifier != nil {
		p.deps.Notifier.Notify(toast)
	}
}

func (p *page) success(title, message string) {
	p.notify(Toast{Title: title, Message: message, Variant: ToastSuccess})
}

// fail reports err to the user. Cancellations are not reported.
func (p *page) fail(title string, err error) error {
	if errors.Is(err, context.Canceled) {
		if p.ctx.Err() != nil {
			return ErrPageClosed
		}
		return err
	}
	p.notify(Toast{Title: title, Message: err.Error(), Variant: ToastError})
	return err
}

func (p *page) record(ctx context.Context, action, entity, id string) {
	if p.deps.Recorder == nil {
		return
	}
	activity := domain.Activity{Action: action, Entity: entity, EntityID: id, At: time.Now().UTC()}
	if user := p.user(); user != nil {
		activity.TenantID = user.TenantKey()
		activity.UserID = user.ID
	}
	if err := p.deps.Recorder.Record(ctx, activity); err != nil {
		log.Printf("Warning: [DASHBOARD] activity %s %s not recorded: %v", action, entity, err)
	}
}
