package session_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/session"
	"menuqr-dashboard/dashboard-svc/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nextState(t *testing.T, ch <-chan session.State, match func(session.State) bool) session.State {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case st := <-ch:
			if match(st) {
				return st
			}
		case <-deadline:
			t.Fatal("expected session state never arrived")
			return session.State{}
		}
	}
}

func TestBinding_LoadingUntilMounted(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Save(ctx, map[string]string{session.TokenKey: "tok"}))
	_, client := newBackend(t)
	store := session.NewStore(ctx, client, kv, "demo-tenant")
	require.True(t, store.IsAuthenticated())

	binding := session.NewBinding(store, kv)
	st := binding.State()
	assert.True(t, st.IsLoading)
	assert.False(t, st.IsAuthenticated)

	require.NoError(t, binding.Mount(ctx))
	defer binding.Unmount()

	st = binding.State()
	assert.False(t, st.IsLoading)
	assert.True(t, st.IsAuthenticated)
	assert.ErrorIs(t, binding.Mount(ctx), session.ErrAlreadyMounted)
}

func TestBinding_WrappersToggleLoading(t *testing.T) {
	ctx := context.Background()
	api, client := newBackend(t)
	release := make(chan struct{})
	api.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		<-release
		loginHandler("tok-1")(w, r)
	}).Methods("POST")

	store := session.NewStore(ctx, client, storage.NewMemoryStore(), "demo-tenant")
	binding := session.NewBinding(store, nil)
	require.NoError(t, binding.Mount(ctx))
	defer binding.Unmount()

	states, cancel := binding.Subscribe()
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := binding.Login(ctx, domain.Credentials{Email: owner.Email, Password: "secret"})
		done <- err
	}()

	loading := nextState(t, states, func(st session.State) bool { return st.IsLoading })
	assert.False(t, loading.IsAuthenticated)
	close(release)

	final := nextState(t, states, func(st session.State) bool { return !st.IsLoading })
	require.NoError(t, <-done)
	assert.True(t, final.IsAuthenticated)
	assert.Equal(t, "u1", final.User.ID)

	binding.Logout(ctx)
	out := nextState(t, states, func(st session.State) bool { return !st.IsLoading && !st.IsAuthenticated })
	assert.Nil(t, out.User)
}

func TestBinding_FollowsOtherProcesses(t *testing.T) {
	ctx := context.Background()
	api, client := newBackend(t)
	api.HandleFunc("/auth/login", loginHandler("tok-1")).Methods("POST")

	kv, mr := newRedisStorage(t)
	otherClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer otherClient.Close()
	otherKV := storage.NewRedisStore(otherClient, "")

	watcher := session.NewStore(ctx, client, otherKV, "demo-tenant")
	binding := session.NewBinding(watcher, otherKV)
	require.NoError(t, binding.Mount(ctx))
	defer binding.Unmount()
	states, cancel := binding.Subscribe()
	defer cancel()

	actor := session.NewStore(ctx, client, kv, "demo-tenant")
	_, err := actor.Login(ctx, domain.Credentials{Email: owner.Email, Password: "secret"})
	require.NoError(t, err)

	signedIn := nextState(t, states, func(st session.State) bool { return st.IsAuthenticated })
	assert.Equal(t, "chez-ali", signedIn.User.Tenant.Slug)
	assert.Equal(t, "tok-1", watcher.Token())

	actor.Logout(ctx)
	nextState(t, states, func(st session.State) bool { return !st.IsAuthenticated })
	assert.False(t, watcher.IsAuthenticated())
}

func TestBinding_UnmountStopsUpdates(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	_, client := newBackend(t)
	store := session.NewStore(ctx, client, kv, "demo-tenant")

	binding := session.NewBinding(store, kv)
	require.NoError(t, binding.Mount(ctx))
	binding.Unmount()

	require.NoError(t, kv.Save(ctx, map[string]string{session.TokenKey: "tok"}))
	time.Sleep(50 * time.Millisecond)

	assert.False(t, binding.State().IsAuthenticated)
	assert.False(t, store.IsAuthenticated())
}

func TestBinding_ConcurrentMountsStartOneListener(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	_, client := newBackend(t)
	store := session.NewStore(ctx, client, kv, "demo-tenant")
	binding := session.NewBinding(store, kv)

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = binding.Mount(ctx)
		}(i)
	}
	wg.Wait()

	mounted := 0
	for _, err := range errs {
		if err == nil {
			mounted++
			continue
		}
		assert.ErrorIs(t, err, session.ErrAlreadyMounted)
	}
	assert.Equal(t, 1, mounted)

	binding.Unmount()
	require.NoError(t, binding.Mount(ctx))
	defer binding.Unmount()

	states, cancel := binding.Subscribe()
	defer cancel()
	require.NoError(t, kv.Save(ctx, map[string]string{session.TokenKey: "tok"}))
	nextState(t, states, func(st session.State) bool { return st.IsAuthenticated })
}
