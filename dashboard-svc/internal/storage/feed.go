package storage

import (
	"context"
	"sync"
)

// feed fans change notifications out to in-process watchers.
type feed struct {
	mu   sync.Mutex
	subs map[chan []string]struct{}
}

func (f *feed) watch(ctx context.Context) <-chan []string {
	ch := make(chan []string, 8)

	f.mu.Lock()
	if f.subs == nil {
		f.subs = make(map[chan []string]struct{})
	}
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, ch)
		close(ch)
		f.mu.Unlock()
	}()
	return ch
}

// publish drops the notification for watchers that are not keeping up.
func (f *feed) publish(keys []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subs {
		select {
		case ch <- keys:
		default:
		}
	}
}
