package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryGetSetDelete(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "cart", []byte(`[]`)))
	raw, ok, err := kv.Get(ctx, "cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(raw))

	require.NoError(t, kv.Delete(ctx, "cart"))
	_, ok, err = kv.Get(ctx, "cart")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is fine.
	require.NoError(t, kv.Delete(ctx, "cart"))
}

func TestMemoryCopiesValues(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	value := []byte("abc")
	require.NoError(t, kv.Set(ctx, "k", value))
	value[0] = 'x'

	raw, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", string(raw))

	raw[0] = 'y'
	again, _, _ := kv.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestNamespacedIsolation(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	a := Namespaced(kv, "scope:a")
	b := Namespaced(kv, "scope:b")

	require.NoError(t, a.Set(ctx, "cart", []byte("A")))
	require.NoError(t, b.Set(ctx, "cart", []byte("B")))

	rawA, ok, err := a.Get(ctx, "cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "A", string(rawA))

	rawB, _, _ := b.Get(ctx, "cart")
	assert.Equal(t, "B", string(rawB))

	// The underlying keys are prefixed.
	raw, ok, err := kv.Get(ctx, "scope:a:cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "A", string(raw))

	require.NoError(t, a.Delete(ctx, "cart"))
	_, ok, _ = b.Get(ctx, "cart")
	assert.True(t, ok)
}
