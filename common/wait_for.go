package common

import "context"

// StateWaiter is anything that can block until a gateway event matching a filter arrives.
// *state.State satisfies it. Implementations must not consume events that don't match.
type StateWaiter interface {
	WaitFor(context.Context, func(any) bool) any
}

// StateSubscriber streams every gateway event matching a filter until cancel is called.
// *state.State satisfies it.
type StateSubscriber interface {
	ChanFor(func(any) bool) (out <-chan any, cancel func())
}

// WaitFor blocks until an event of type T passes filter, so filters don't need type assertions.
// ok is false if ctx expired first.
func WaitFor[T any](ctx context.Context, s StateWaiter, filter func(t T) bool) (t T, ok bool) {
	v := s.WaitFor(ctx, func(i any) bool {
		ev, ok := i.(T)
		return ok && filter(ev)
	})
	if v == nil {
		return t, false
	}

	t, ok = v.(T)
	return t, ok
}
