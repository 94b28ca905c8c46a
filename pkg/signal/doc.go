// Package signal provides a small explicit reactive core: versioned values
// with subscriber notification and pull-based memoized derivations.
//
// It replaces implicit dependency tracking with an explicit graph: a
// Computed declares the observables it reads, caches its last result, and
// recomputes exactly when one of those dependencies has advanced since the
// previous read — and not otherwise. Notification is synchronous fan-out to
// subscribers; reads are pull-based, so a burst of writes costs one
// recompute on the next read.
//
// # Usage
//
//	count := signal.NewValue(0)
//	double := signal.NewComputed(func() int { return count.Get() * 2 }, count)
//
//	sub := count.Subscribe(func() { render(double.Get()) })
//	defer sub.Unsubscribe()
//
//	count.Set(2) // notifies the subscriber; double.Get() recomputes once
//
// All types are safe for concurrent use. Subscriber callbacks run outside
// internal locks, so they may freely read the value that notified them.
package signal
