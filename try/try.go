// Package try runs a function and captures a panic inside it as an error,
// confining an abort to the call instead of letting it take down the
// process. It is the boundary counterpart of the expect helpers: code that
// unwraps aggressively can be wrapped in try at the point where failures
// become recoverable again.
package try

import (
	"fmt"

	"github.com/vitiral/expect-macro/results"
)

// PanicError is the error a captured panic is reported as. Value holds the
// recovered panic value unchanged.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the recovered value when the panic carried an error, so
// errors.Is and errors.As reach the original failure payload.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// Do runs fn and returns nil when it completes. If fn panics, Do recovers
// and returns the panic as a *PanicError.
func Do(fn func()) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v}
		}
	}()

	fn()
	return nil
}

// Get runs fn and normalizes its outcome into a Result. An error returned
// by fn is passed through untouched; a panic becomes a failure carrying a
// *PanicError.
func Get[T any](fn func() (T, error)) (res results.Result[T]) {
	defer func() {
		if v := recover(); v != nil {
			res = results.Failure[T](&PanicError{Value: v})
		}
	}()

	return results.New(fn())
}
