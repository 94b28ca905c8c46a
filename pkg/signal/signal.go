package signal

import "sync"

// Observable is anything with a monotonically advancing version that can be
// watched for changes. Value and Computed both implement it.
type Observable interface {
	// Version returns the current change counter. It advances on every
	// observable change and never moves backwards.
	Version() uint64

	// Subscribe registers fn to run after every change. The callback runs
	// synchronously on the writer's goroutine, outside internal locks.
	Subscribe(fn func()) Subscription
}

// Subscription detaches a subscriber from its observable.
type Subscription interface {
	Unsubscribe()
}

// Value is a settable observable holding one value of type T.
type Value[T any] struct {
	mu      sync.RWMutex
	val     T
	version uint64
	nextID  int
	subs    map[int]func()
}

// NewValue creates a value observable with the given initial state.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{val: initial, subs: make(map[int]func())}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.val
}

// Set replaces the value, advances the version, and notifies subscribers.
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	v.val = next
	v.version++
	fns := v.snapshotSubsLocked()
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Update applies fn to the current value and stores the result, as one
// atomic read-modify-write.
func (v *Value[T]) Update(fn func(T) T) {
	v.mu.Lock()
	v.val = fn(v.val)
	v.version++
	fns := v.snapshotSubsLocked()
	v.mu.Unlock()

	for _, f := range fns {
		f()
	}
}

// Version implements Observable.
func (v *Value[T]) Version() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.version
}

// Subscribe implements Observable.
func (v *Value[T]) Subscribe(fn func()) Subscription {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	return &valueSub[T]{owner: v, id: id}
}

func (v *Value[T]) snapshotSubsLocked() []func() {
	if len(v.subs) == 0 {
		return nil
	}
	fns := make([]func(), 0, len(v.subs))
	for _, fn := range v.subs {
		fns = append(fns, fn)
	}
	return fns
}

type valueSub[T any] struct {
	owner *Value[T]
	once  sync.Once
	id    int
}

func (s *valueSub[T]) Unsubscribe() {
	s.once.Do(func() {
		s.owner.mu.Lock()
		delete(s.owner.subs, s.id)
		s.owner.mu.Unlock()
	})
}
