package results

import (
	"errors"
	"fmt"
)

// ErrNone is the failure payload a Result receives when it is built from an
// absent value. The message is fixed and is exactly what Unwrap panics with.
var ErrNone = errors.New("Got value of None")

// Result holds either a success value or a failure payload. A nil Err marks
// success and Val is valid; a non-nil Err marks failure and Val holds
// whatever the producer left there.
type Result[T any] struct {
	Val T
	Err error
}

// New normalizes a (value, error) pair into a Result.
func New[T any](val T, err error) Result[T] {
	return Result[T]{Val: val, Err: err}
}

func Success[T any](val T) Result[T] {
	return Result[T]{Val: val}
}

func Failure[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// FromOK normalizes a comma-ok pair into a Result. When ok is false the
// Result fails with ErrNone.
func FromOK[T any](val T, ok bool) Result[T] {
	if !ok {
		return Result[T]{Val: val, Err: ErrNone}
	}
	return Result[T]{Val: val}
}

func (r Result[T]) Get() (T, error) {
	return r.Val, r.Err
}

func (r Result[T]) IsOk() bool {
	return r.Err == nil
}

func (r Result[T]) IsErr() bool {
	return r.Err != nil
}

// Unwrap returns the success value or panics with the failure payload. The
// recovered value is the original error, not a rendering of it.
func (r Result[T]) Unwrap() T {
	if r.Err != nil {
		panic(r.Err)
	}
	return r.Val
}

// Expect returns the success value or panics with exactly msg. The failure
// payload is discarded; callers that want it in the message should go
// through UnwrapOrElse and format it themselves.
func (r Result[T]) Expect(msg string) T {
	if r.Err != nil {
		panic(msg)
	}
	return r.Val
}

// Expectf returns the success value or panics with the rendered format
// string. Rendering only happens on the failure path.
func (r Result[T]) Expectf(format string, args ...any) T {
	if r.Err != nil {
		panic(fmt.Sprintf(format, args...))
	}
	return r.Val
}

// UnwrapOr returns the success value or def.
func (r Result[T]) UnwrapOr(def T) T {
	if r.Err != nil {
		return def
	}
	return r.Val
}

// UnwrapOrElse returns the success value or the result of fn applied to the
// failure payload. fn is invoked only on the failure path.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.Err != nil {
		return fn(r.Err)
	}
	return r.Val
}
