package signal

import "sync"

// Computed is a memoized derivation over explicitly declared dependencies.
// Get recomputes only when at least one dependency's version has advanced
// since the previous computation.
type Computed[T any] struct {
	mu    sync.Mutex
	fn    func() T
	deps  []Observable
	memo  T
	seen  []uint64
	fresh bool
}

// NewComputed creates a derivation of fn over the given dependencies. fn
// must be deterministic over the dependency values and side-effect free.
func NewComputed[T any](fn func() T, deps ...Observable) *Computed[T] {
	return &Computed[T]{
		fn:   fn,
		deps: deps,
		seen: make([]uint64, len(deps)),
	}
}

// Get returns the memoized value, recomputing it first if any dependency
// changed since the last call.
func (c *Computed[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stale() {
		for i, d := range c.deps {
			c.seen[i] = d.Version()
		}
		c.memo = c.fn()
		c.fresh = true
	}
	return c.memo
}

// Version implements Observable as the sum of the dependency versions, so
// staleness propagates through chains of computeds without forcing an
// intermediate recompute.
func (c *Computed[T]) Version() uint64 {
	var v uint64
	for _, d := range c.deps {
		v += d.Version()
	}
	return v
}

// Subscribe implements Observable by fanning in change notifications from
// every dependency.
func (c *Computed[T]) Subscribe(fn func()) Subscription {
	subs := make([]Subscription, 0, len(c.deps))
	for _, d := range c.deps {
		subs = append(subs, d.Subscribe(fn))
	}
	return &fanInSub{subs: subs}
}

func (c *Computed[T]) stale() bool {
	if !c.fresh {
		return true
	}
	for i, d := range c.deps {
		if d.Version() != c.seen[i] {
			return true
		}
	}
	return false
}

type fanInSub struct {
	once sync.Once
	subs []Subscription
}

func (s *fanInSub) Unsubscribe() {
	s.once.Do(func() {
		for _, sub := range s.subs {
			sub.Unsubscribe()
		}
	})
}
