package resilience

import (
	"context"
	"sync"
)

// SingleFlight collapses concurrent calls for the same key into one execution.
// Nothing is kept once the call returns.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn once per in-flight key. The bool reports whether the result was
// shared with another caller.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	return g.DoContext(context.Background(), key, fn)
}

// DoContext behaves like Do, but every caller, the one that started the call
// included, stops waiting when its own ctx is done. The running call is not
// interrupted and still delivers its result to the remaining callers.
func (g *SingleFlight) DoContext(ctx context.Context, key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}

	c, shared := g.calls[key]
	if !shared {
		c = &call{done: make(chan struct{})}
		g.calls[key] = c
		go g.run(key, c, fn)
	}
	g.mu.Unlock()

	select {
	case <-c.done:
		return c.val, c.err, shared
	case <-ctx.Done():
		return nil, ctx.Err(), shared
	}
}

func (g *SingleFlight) run(key string, c *call, fn func() (any, error)) {
	c.val, c.err = fn()

	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
	close(c.done)
}
