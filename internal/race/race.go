// Package race bounds an asynchronous operation with a single owned
// timer. There is exactly one time source per attempt: the timer
// started here. The operation's context is cancelled when the timer
// fires, so sockets opened inside the operation are torn down rather
// than drained.
package race

import (
	"context"
	"fmt"
	"time"

	"scriptlink/internal/errors"
)

type outcome[T any] struct {
	val T
	err error
}

// Run executes op and returns its result, unless budget elapses first,
// in which case a timeout error carrying label is returned instead.
// Exactly one of the two is ever observed.
//
// When the timer wins, op is abandoned: its goroutine keeps running
// until the cancelled context unblocks it. Any resource op acquired
// must be released on its own cancellation path.
func Run[T any](ctx context.Context, budget time.Duration, label string, op func(context.Context) (T, error)) (T, error) {
	opCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan outcome[T], 1)
	go func() {
		v, err := op(opCtx)
		ch <- outcome[T]{v, err}
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	select {
	case r := <-ch:
		return r.val, r.err
	case <-timer.C:
		var zero T
		return zero, fmt.Errorf("%s after %v: %w", label, budget, errors.ErrTimeout)
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
