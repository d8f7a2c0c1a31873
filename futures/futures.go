// Package futures provides a Future representing an asynchronous computation
// whose outcome is a results.Result. A Future can be passed around and read
// by multiple consumers, unlike a channel value which can only be read once.
//
// The package exists so that code built on the expect helpers stays safe at
// asynchronous boundaries: a function run through FromFunc may unwrap
// aggressively, and an abort inside it fails the future instead of crashing
// the process. Waiters choose how to consume the outcome. Get returns the
// plain (value, error) pair, GetResult returns the normalized shape, and
// Must re-applies unwrap-or-abort semantics in the waiting goroutine.
package futures

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/vitiral/expect-macro/results"
	"github.com/vitiral/expect-macro/try"
)

var (
	// ErrCanceled is the error reported when a future is completed by calling Cancel
	ErrCanceled = errors.New("future canceled")
)

// FutureFunc is the function signature required to create a Future via FromFunc
type FutureFunc[T any] func() (T, error)

// Future is a structure that represents an asynchronous computation.
// A Future should be created by calling New() or using the FromFunc convenience function.
// Once a future has been created it can be completed exactly once. The first completion
// wins and all other completions are silently ignored.
//
// Complete, Cancel and Fail will all complete a future.
// Complete is used in the success case.
// Fail is used for signaling that the Future failed with an error.
// Cancel is used to signal that the asynchronous computation was canceled.
//
// Waiting on an uncompleted future blocks until the future completes or the
// context is canceled, and every waiter observes the same outcome.
type Future[T any] struct {
	isCompleted uint32
	completed   chan struct{}

	res results.Result[T]
}

// New creates a new uncompleted Future that will eventually contain a value of type T.
// This future must be manually completed by calling Complete, Fail, or Cancel.
func New[T any]() *Future[T] {
	return &Future[T]{
		completed: make(chan struct{}),
	}
}

// FromFunc creates a new uncompleted Future that will eventually contain the
// outcome of the provided function, which is run asynchronously. An abort
// inside the function is confined to it: the future fails with a
// *try.PanicError carrying the abort payload and the process stays up.
func FromFunc[T any](do FutureFunc[T]) *Future[T] {
	f := New[T]()

	go func() {
		f.complete(try.Get[T](do))
	}()

	return f
}

// Complete completes this Future with the provided value. If the future has already been completed this call is ignored.
func (f *Future[T]) Complete(value T) {
	f.complete(results.Success(value))
}

// Cancel completes this Future with the ErrCanceled error. If the future has already been completed this call is ignored.
func (f *Future[T]) Cancel() {
	f.Fail(ErrCanceled)
}

// Fail completes this Future with the provided error. If the future has already been completed this call is ignored.
func (f *Future[T]) Fail(err error) {
	f.complete(results.Failure[T](err))
}

func (f *Future[T]) complete(res results.Result[T]) {
	if atomic.CompareAndSwapUint32(&f.isCompleted, 0, 1) {
		f.res = res
		close(f.completed)
	}
}

// Get retrieves the value of this Future, blocking until the future is
// completed or the provided context is canceled.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	return f.GetResult(ctx).Get()
}

// GetResult retrieves the outcome of this Future in the normalized shape.
// Cancellation of ctx yields a failure carrying context.Canceled.
func (f *Future[T]) GetResult(ctx context.Context) results.Result[T] {
	select {
	case <-f.completed:
		return f.res
	case <-ctx.Done():
		return results.Failure[T](context.Canceled)
	}
}

// Must retrieves the value of this Future and panics in the calling
// goroutine if the future failed or ctx was canceled. It is the expect.Must
// form of Get.
func (f *Future[T]) Must(ctx context.Context) T {
	return f.GetResult(ctx).Unwrap()
}
