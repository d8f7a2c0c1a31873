package expect

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitiral/expect-macro/results"
)

var ErrExpect = errors.New("expect error")

func TestMust(t *testing.T) {
	require := require.New(t)

	require.Equal(42, Must(42, nil))

	// extra message arguments change nothing on the success path
	require.Equal(42, Mustf(42, nil, "Some values: %d, %d", 1, 2))
	require.Equal(42, MustFunc(42, nil, func() string { return "unused" }))
}

func TestMustPanic(t *testing.T) {
	require := require.New(t)

	v := catchPanic(t, func() {
		Must(0, ErrExpect)
	})

	err, ok := v.(error)
	require.True(ok)
	require.ErrorIs(err, ErrExpect)
	require.Equal("expect error", err.Error())
}

func TestMustfPanic(t *testing.T) {
	require := require.New(t)

	v := catchPanic(t, func() {
		Mustf(0, ErrExpect, "Some values: %d, %d", 1, 2)
	})

	require.Equal("Some values: 1, 2", v)
	require.NotContains(v, ErrExpect.Error())
}

func TestMustFuncLazy(t *testing.T) {
	require := require.New(t)

	calls := 0
	msg := func() string {
		calls++
		return "lazy message"
	}

	require.Equal(42, MustFunc(42, nil, msg))
	require.Equal(0, calls)

	v := catchPanic(t, func() {
		MustFunc(0, ErrExpect, msg)
	})
	require.Equal("lazy message", v)
	require.Equal(1, calls)
}

func TestMustOK(t *testing.T) {
	require := require.New(t)

	require.Equal(42, MustOK(42, true))
	require.Equal("v", MustOKf("v", true, "Got None, expected 42"))
}

func TestMustOKPanic(t *testing.T) {
	require := require.New(t)

	v := catchPanic(t, func() {
		MustOK(0, false)
	})

	err, ok := v.(error)
	require.True(ok)
	require.ErrorIs(err, results.ErrNone)
	require.Equal("Got value of None", err.Error())
}

func TestMustOKfPanic(t *testing.T) {
	require := require.New(t)

	v := catchPanic(t, func() {
		MustOKf(0, false, "Got None, expected 42")
	})

	require.Equal("Got None, expected 42", v)
}

func TestMustOKFuncLazy(t *testing.T) {
	require := require.New(t)

	calls := 0
	msg := func() string {
		calls++
		return "still nothing"
	}

	require.Equal(1, MustOKFunc(1, true, msg))
	require.Equal(0, calls)

	v := catchPanic(t, func() {
		MustOKFunc(0, false, msg)
	})
	require.Equal("still nothing", v)
	require.Equal(1, calls)
}

func TestMustChain(t *testing.T) {
	require := require.New(t)

	foo := func(n int) (int, error) {
		return n, nil
	}
	barCalled := false
	bar := func(n int) (int, error) {
		barCalled = true
		return 0, ErrExpect
	}

	// the outer unwrap fires on bar's failure
	v := catchPanic(t, func() {
		Must(bar(Must(foo(1))))
	})
	err, ok := v.(error)
	require.True(ok)
	require.ErrorIs(err, ErrExpect)
	require.True(barCalled)
}

func TestMustChainInnerFailure(t *testing.T) {
	require := require.New(t)

	failing := func() (int, error) {
		return 0, ErrExpect
	}
	outerCalled := false
	outer := func(n int) (int, error) {
		outerCalled = true
		return n, nil
	}

	// the inner unwrap aborts first and the outer call never runs
	v := catchPanic(t, func() {
		Must(outer(Must(failing())))
	})
	err, ok := v.(error)
	require.True(ok)
	require.ErrorIs(err, ErrExpect)
	require.False(outerCalled)
}

func TestNoError(t *testing.T) {
	require := require.New(t)

	NoError(nil)
	NoErrorf(nil, "unused %d", 0)

	v := catchPanic(t, func() {
		NoError(ErrExpect)
	})
	err, ok := v.(error)
	require.True(ok)
	require.ErrorIs(err, ErrExpect)

	v = catchPanic(t, func() {
		NoErrorf(ErrExpect, "opening %s", "conf")
	})
	require.Equal("opening conf", v)
}

func TestAbortConfinedToGoroutine(t *testing.T) {
	require := require.New(t)

	wg := sync.WaitGroup{}

	var recovered any
	siblingDone := false

	wg.Add(2)
	go func() {
		defer wg.Done()
		defer func() {
			recovered = recover()
		}()

		Must(0, ErrExpect)
	}()
	go func() {
		defer wg.Done()
		siblingDone = true
	}()

	wg.Wait()

	err, ok := recovered.(error)
	require.True(ok)
	require.ErrorIs(err, ErrExpect)
	require.True(siblingDone)
}

func catchPanic(t *testing.T, f func()) (v any) {
	t.Helper()

	defer func() {
		v = recover()
		if v == nil {
			t.Fatal("expected a panic")
		}
	}()

	f()
	return nil
}
