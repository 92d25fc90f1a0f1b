package tui

import "time"

// Sub describes an ongoing event source derived from the current model. It is
// re-derived after every transition; the runtime diffs the previous and next
// values to decide whether timers start, stop, or keep running. A nil Sub
// means no subscription.
type Sub[T any] interface {
	isSub()
}

// IntervalSub fires Msg every Every. Msg must be a comparable value so two
// derivations of the same subscription compare equal.
type IntervalSub[T any] struct {
	Every time.Duration
	Msg   T
}

func (IntervalSub[T]) isSub() {}

// Every builds an interval subscription.
func Every[T any](every time.Duration, msg T) Sub[T] {
	return IntervalSub[T]{Every: every, Msg: msg}
}

// SubEqual reports whether two subscriptions describe the same event source.
func SubEqual[T any](a, b Sub[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ia, ok := a.(IntervalSub[T])
	if !ok {
		return false
	}
	ib, ok := b.(IntervalSub[T])
	if !ok {
		return false
	}
	return ia.Every == ib.Every && any(ia.Msg) == any(ib.Msg)
}
