package fetch

import (
	"context"
	"sync"
)

// Snapshot is the observable state of a Fetcher or Mutator.
type Snapshot[T any] struct {
	// Data is the last successful result, nil before the first success and
	// after Reset.
	Data *T
	// Loading reports whether a call is in flight.
	Loading bool
	// Err is the classified error of the last failed call, nil on success.
	Err error
}

// Fetcher is the single-shot hook: it performs one call at a time and records
// the outcome. A is the argument type, T the result type.
type Fetcher[A, T any] struct {
	fn        func(ctx context.Context, args A) (T, error)
	onSuccess func(T)
	onError   func(error)

	mu      sync.Mutex
	data    *T
	loading bool
	err     error
}

// NewFetcher wraps a domain service call in a Fetcher. The call is not
// executed until Execute is invoked.
func NewFetcher[A, T any](fn func(ctx context.Context, args A) (T, error)) *Fetcher[A, T] {
	return &Fetcher[A, T]{fn: fn}
}

// OnSuccess registers a side-effect callback invoked after every successful
// Execute, before Execute returns. Returns the receiver for chaining.
func (f *Fetcher[A, T]) OnSuccess(cb func(T)) *Fetcher[A, T] {
	f.onSuccess = cb
	return f
}

// OnError registers a side-effect callback invoked after every failed
// Execute, before Execute returns. Returns the receiver for chaining.
func (f *Fetcher[A, T]) OnError(cb func(error)) *Fetcher[A, T] {
	f.onError = cb
	return f
}

// Execute performs the call. It sets Loading and clears Err at entry; on
// completion exactly one of Data and Err is set and Loading is cleared again,
// whether the call succeeded or failed. The result is both recorded in the
// snapshot and returned, so callers can react locally or just read state.
func (f *Fetcher[A, T]) Execute(ctx context.Context, args A) (T, error) {
	f.mu.Lock()
	f.loading = true
	f.err = nil
	f.mu.Unlock()

	// loading clears even if the wrapped call panics
	defer func() {
		f.mu.Lock()
		f.loading = false
		f.mu.Unlock()
	}()

	result, err := f.fn(ctx, args)

	f.mu.Lock()
	if err != nil {
		f.err = err
		f.data = nil
	} else {
		f.data = &result
		f.err = nil
	}
	f.mu.Unlock()

	if err != nil {
		if f.onError != nil {
			f.onError(err)
		}
		return result, err
	}

	if f.onSuccess != nil {
		f.onSuccess(result)
	}
	return result, nil
}

// Reset clears data, error, and loading.
func (f *Fetcher[A, T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.data = nil
	f.err = nil
	f.loading = false
}

// Snapshot returns the current state.
func (f *Fetcher[A, T]) Snapshot() Snapshot[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	return Snapshot[T]{Data: f.data, Loading: f.loading, Err: f.err}
}
