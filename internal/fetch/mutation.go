package fetch

import (
	"context"
	"sync"
)

// Mutator is the mutation hook: it wraps a single non-idempotent call
// (create, update, delete). Unlike a Fetcher it is never executed
// automatically; every call is an explicit Mutate.
type Mutator[A, T any] struct {
	fn        func(ctx context.Context, args A) (T, error)
	onSuccess func(T)
	onError   func(error)

	mu      sync.Mutex
	data    *T
	loading bool
	err     error
}

// NewMutator wraps a domain service mutation.
func NewMutator[A, T any](fn func(ctx context.Context, args A) (T, error)) *Mutator[A, T] {
	return &Mutator[A, T]{fn: fn}
}

// OnSuccess registers a side-effect callback (e.g. a success notification)
// invoked after every successful Mutate. Returns the receiver for chaining.
func (m *Mutator[A, T]) OnSuccess(cb func(T)) *Mutator[A, T] {
	m.onSuccess = cb
	return m
}

// OnError registers a side-effect callback invoked after every failed
// Mutate. Returns the receiver for chaining.
func (m *Mutator[A, T]) OnError(cb func(error)) *Mutator[A, T] {
	m.onError = cb
	return m
}

// Mutate performs the call with the same settle semantics as
// [Fetcher.Execute]: Loading is cleared unconditionally and exactly one of
// Data and Err is set afterwards.
func (m *Mutator[A, T]) Mutate(ctx context.Context, args A) (T, error) {
	m.mu.Lock()
	m.loading = true
	m.err = nil
	m.mu.Unlock()

	// loading clears even if the wrapped call panics
	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	result, err := m.fn(ctx, args)

	m.mu.Lock()
	if err != nil {
		m.err = err
		m.data = nil
	} else {
		m.data = &result
		m.err = nil
	}
	m.mu.Unlock()

	if err != nil {
		if m.onError != nil {
			m.onError(err)
		}
		return result, err
	}

	if m.onSuccess != nil {
		m.onSuccess(result)
	}
	return result, nil
}

// Reset clears data, error, and loading.
func (m *Mutator[A, T]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = nil
	m.err = nil
	m.loading = false
}

// Snapshot returns the current state.
func (m *Mutator[A, T]) Snapshot() Snapshot[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot[T]{Data: m.data, Loading: m.loading, Err: m.err}
}
