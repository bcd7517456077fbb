// Package pages holds the page controllers: one per screen, each owning its
// dispatchers and a context cancelled on teardown so in-flight requests do
// not outlive the page. Pages do not share state; each re-fetches on mount.
package pages

import (
	"context"
	"sync"
)

// loadingSet tracks independent per-resource loading flags so one slow fetch
// does not block reporting readiness of data that already arrived.
type loadingSet struct {
	mu    sync.RWMutex
	flags map[string]bool
}

func newLoadingSet(resources ...string) *loadingSet {
	flags := make(map[string]bool, len(resources))
	for _, r := range resources {
		flags[r] = false
	}
	return &loadingSet{flags: flags}
}

func (l *loadingSet) start(resource string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flags[resource] = true
}

func (l *loadingSet) finish(resource string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.flags[resource] = false
}

func (l *loadingSet) loading(resource string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.flags[resource]
}

// pageContext is the cancellable lifetime shared by every fetch a page
// issues; Close releases it on all exit paths.
type pageContext struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func newPageContext(parent context.Context) pageContext {
	ctx, cancel := context.WithCancel(parent)
	return pageContext{ctx: ctx, cancel: cancel}
}

func (p pageContext) Close() {
	p.cancel()
}
