package fetch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarly/bazarly-go/internal/transport"
)

func TestMutator_Mutate_Success(t *testing.T) {
	var created []string
	m := NewMutator(func(_ context.Context, _ string) (string, error) {
		return "listing-1", nil
	}).OnSuccess(func(id string) { created = append(created, id) })

	id, err := m.Mutate(context.Background(), "bike")
	require.NoError(t, err)
	assert.Equal(t, "listing-1", id)
	assert.Equal(t, []string{"listing-1"}, created)

	snap := m.Snapshot()
	assert.False(t, snap.Loading)
	require.NotNil(t, snap.Data)
	assert.Equal(t, "listing-1", *snap.Data)
}

func TestMutator_Mutate_Failure(t *testing.T) {
	classified := transport.Classify(422, []byte(`{"message":"Title is required"}`))
	var notified []error

	m := NewMutator(func(_ context.Context, _ string) (string, error) {
		return "", classified
	}).OnError(func(err error) { notified = append(notified, err) })

	_, err := m.Mutate(context.Background(), "")
	require.Error(t, err)
	assert.True(t, transport.IsKind(err, transport.KindValidation))
	assert.Equal(t, "Title is required", transport.MessageOf(err))

	snap := m.Snapshot()
	assert.False(t, snap.Loading)
	assert.Nil(t, snap.Data)
	assert.Equal(t, classified, snap.Err)
	assert.Equal(t, []error{classified}, notified)
}

func TestMutator_LoadingClearsOnPanic(t *testing.T) {
	m := NewMutator(func(_ context.Context, _ int) (int, error) {
		panic("mutation blew up")
	})

	assert.Panics(t, func() { _, _ = m.Mutate(context.Background(), 1) })
	assert.False(t, m.Snapshot().Loading)
}

func TestMutator_Reset(t *testing.T) {
	m := NewMutator(func(_ context.Context, n int) (int, error) { return n * 2, nil })

	_, err := m.Mutate(context.Background(), 3)
	require.NoError(t, err)

	m.Reset()

	snap := m.Snapshot()
	assert.Nil(t, snap.Data)
	assert.NoError(t, snap.Err)
	assert.False(t, snap.Loading)
}
