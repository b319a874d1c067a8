package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"menuqr-dashboard/dashboard-svc/internal/domain"
)

var ErrAlreadyMounted = errors.New("session binding already mounted")

// ChangeFeed reports keys changed by other processes sharing the storage.
type ChangeFeed interface {
	Watch(ctx context.Context) (<-chan []string, error)
}

type State struct {
	User            *domain.User
	IsAuthenticated bool
	IsLoading       bool
}

// Binding exposes the store as observable state. Until Mount completes the
// state reads as loading and signed out.
type Binding struct {
	store *Store
	feed  ChangeFeed

	// mountMu serializes Mount and Unmount.
	mountMu sync.Mutex

	mu      sync.Mutex
	state   State
	mounted bool
	pending int
	subs    map[int]chan State
	nextSub int

	cancel context.CancelFunc
	done   chan struct{}
}

func NewBinding(store *Store, feed ChangeFeed) *Binding {
	return &Binding{
		store: store,
		feed:  feed,
		state: State{IsLoading: true},
		subs:  map[int]chan State{},
	}
}

func (b *Binding) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Mount snapshots the store and starts following storage changes.
func (b *Binding) Mount(ctx context.Context) error {
	b.mountMu.Lock()
	defer b.mountMu.Unlock()

	b.mu.Lock()
	mounted := b.mounted
	b.mu.Unlock()
	if mounted {
		return ErrAlreadyMounted
	}

	watchCtx, cancel := context.WithCancel(ctx)
	var changes <-chan []string
	if b.feed != nil {
		ch, err := b.feed.Watch(watchCtx)
		if err != nil {
			cancel()
			return err
		}
		changes = ch
	}

	b.mu.Lock()
	b.mounted = true
	b.cancel = cancel
	b.done = make(chan struct{})
	b.refreshLocked()
	b.mu.Unlock()

	go b.listen(watchCtx, changes)
	return nil
}

func (b *Binding) listen(ctx context.Context, changes <-chan []string) {
	defer close(b.done)
	if changes == nil {
		<-ctx.Done()
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case keys, ok := <-changes:
			if !ok {
				return
			}
			if !touchesSession(keys) {
				continue
			}
			if err := b.store.Hydrate(ctx); err != nil {
				log.Printf("ERROR: [SESSION] rehydrate after change: %v", err)
				continue
			}
			b.mu.Lock()
			b.refreshLocked()
			b.mu.Unlock()
		}
	}
}

func touchesSession(keys []string) bool {
	for _, key := range keys {
		if key == TokenKey || key == UserKey {
			return true
		}
	}
	return false
}

// Unmount stops following storage changes.
func (b *Binding) Unmount() {
	b.mountMu.Lock()
	defer b.mountMu.Unlock()

	b.mu.Lock()
	if !b.mounted {
		b.mu.Unlock()
		return
	}
	b.mounted = false
	cancel, done := b.cancel, b.done
	b.mu.Unlock()

	cancel()
	<-done
}

// Subscribe delivers state snapshots. A slow reader only sees the latest one.
func (b *Binding) Subscribe() (<-chan State, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextSub
	b.nextSub++
	ch := make(chan State, 1)
	b.subs[id] = ch

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(ch)
		}
	}
}

func (b *Binding) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthResponse, error) {
	b.begin()
	defer b.end()
	return b.store.Login(ctx, creds)
}

func (b *Binding) Register(ctx context.Context, req domain.RegisterRequest) (*domain.AuthResponse, error) {
	b.begin()
	defer b.end()
	return b.store.Register(ctx, req)
}

func (b *Binding) Logout(ctx context.Context) {
	b.begin()
	defer b.end()
	b.store.Logout(ctx)
}

func (b *Binding) UpdateProfile(ctx context.Context, update domain.TenantUpdate) (*domain.Tenant, error) {
	b.begin()
	defer b.end()
	return b.store.UpdateRestaurantProfile(ctx, update)
}

func (b *Binding) RefreshUser(ctx context.Context) (*domain.User, error) {
	b.begin()
	defer b.end()
	return b.store.RefreshUser(ctx)
}

func (b *Binding) begin() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending++
	b.refreshLocked()
}

func (b *Binding) end() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending--
	b.refreshLocked()
}

func (b *Binding) refreshLocked() {
	if !b.mounted {
		return
	}
	user := b.store.CurrentUser()
	b.state = State{
		User:            user,
		IsAuthenticated: b.store.IsAuthenticated(),
		IsLoading:       b.pending > 0,
	}
	for _, ch := range b.subs {
		select {
		case <-ch:
		default:
		}
		ch <- b.state
	}
}
