package futures

import (
	"context"

	"github.com/vitiral/expect-macro/results"
)

// ResolveAll waits for all of the provided Futures to complete and returns a results.Result for each
// future at the index corresponding to the provided slice.
// If the provided context is canceled, the cancellation error will be returned as an error by this function.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]results.Result[T], error) {
	res := make([]results.Result[T], 0, len(fs))

	for _, f := range fs {
		res = append(res, f.GetResult(ctx))
		// check for error at the end of the loop to avoid the race of cancelling while getting the last value in the list
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return res, nil
}

// MustAll waits for all of the provided Futures and unwraps every value,
// panicking in the calling goroutine on the first failed future. Values are
// returned at the index corresponding to the provided slice.
func MustAll[T any](ctx context.Context, fs []*Future[T]) []T {
	vals := make([]T, 0, len(fs))

	for _, f := range fs {
		vals = append(vals, f.Must(ctx))
	}

	return vals
}
