// Package expect provides helpers that unwrap a value or abort the calling
// goroutine with a useful panic message.
//
// Must returns the value from a (T, error) pair and panics with the error
// itself when it is non-nil, so the abort message is the error's own
// rendering and the panic trace names the failing call site. MustOK does the
// same for a comma-ok pair and panics with results.ErrNone, whose message is
// "Got value of None".
//
// The f variants take a printf-style message that replaces the failure
// payload entirely. The message is rendered only on the failure path; a
// successful unwrap never pays the formatting cost. The Func variants go one
// step further and take a closure, so not even the message arguments are
// evaluated unless the unwrap fails:
//
//	n := expect.Must(strconv.Atoi(s))
//
//	v, ok := cache[key]
//	entry := expect.MustOKf(v, ok, "no cache entry for %q", key)
//
// Every failure is fatal to the calling goroutine. Callers that want the
// failure payload inside a custom message should keep the error instead and
// go through results.Result.UnwrapOrElse.
package expect

import (
	"fmt"

	"github.com/vitiral/expect-macro/results"
)

// Must returns val if err is nil and panics with err otherwise.
func Must[T any](val T, err error) T {
	return results.New(val, err).Unwrap()
}

// Mustf returns val if err is nil and panics with the rendered format string
// otherwise. The failure payload is discarded from the message.
func Mustf[T any](val T, err error, format string, args ...any) T {
	return results.New(val, err).Expectf(format, args...)
}

// MustFunc returns val if err is nil and panics with msg() otherwise. msg is
// invoked only on the failure path.
func MustFunc[T any](val T, err error, msg func() string) T {
	r := results.New(val, err)
	if r.IsErr() {
		panic(msg())
	}
	return r.Val
}

// MustOK returns val if ok is true and panics with results.ErrNone
// otherwise.
func MustOK[T any](val T, ok bool) T {
	return results.FromOK(val, ok).Unwrap()
}

// MustOKf returns val if ok is true and panics with the rendered format
// string otherwise.
func MustOKf[T any](val T, ok bool, format string, args ...any) T {
	return results.FromOK(val, ok).Expectf(format, args...)
}

// MustOKFunc returns val if ok is true and panics with msg() otherwise. msg
// is invoked only on the failure path.
func MustOKFunc[T any](val T, ok bool, msg func() string) T {
	r := results.FromOK(val, ok)
	if r.IsErr() {
		panic(msg())
	}
	return r.Val
}

// NoError panics with err if it is non-nil. It is the value-less form of
// Must.
func NoError(err error) {
	if err != nil {
		panic(err)
	}
}

// NoErrorf panics with the rendered format string if err is non-nil.
func NoErrorf(err error, format string, args ...any) {
	if err != nil {
		panic(fmt.Sprintf(format, args...))
	}
}
