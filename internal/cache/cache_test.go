package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey_Canonical(t *testing.T) {
	// no params
	assert.Equal(t, "attachments", Key("attachments", nil))

	// param order never matters
	a := Key("attachments", map[string]string{"client_id": "5", "type": "project"})
	b := Key("attachments", map[string]string{"type": "project", "client_id": "5"})
	assert.Equal(t, a, b)
	assert.Equal(t, "attachments?client_id=5&type=project", a)

	// empty values are dropped
	assert.Equal(t, "attachments", Key("attachments", map[string]string{"search": ""}))
}

func TestMemory_GetSet(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, ok, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "k", []byte("v"), 0))
	value, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), value)
}

func TestMemory_TTLExpiry(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("v"), time.Nanosecond))
	time.Sleep(time.Millisecond)

	_, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_InvalidateDropsOnlyResourcePath(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, Key("attachments", nil), []byte("a"), 0))
	require.NoError(t, m.Set(ctx, Key("attachments", map[string]string{"type": "task"}), []byte("b"), 0))
	require.NoError(t, m.Set(ctx, Key("clients", nil), []byte("c"), 0))
	// sibling resource whose name extends the invalidated path
	require.NoError(t, m.Set(ctx, "attachments-meta", []byte("d"), 0))

	require.NoError(t, m.Invalidate(ctx, "attachments"))

	_, ok, _ := m.Get(ctx, "attachments")
	assert.False(t, ok)
	_, ok, _ = m.Get(ctx, "attachments?type=task")
	assert.False(t, ok)
	_, ok, _ = m.Get(ctx, "clients")
	assert.True(t, ok)
	_, ok, _ = m.Get(ctx, "attachments-meta")
	assert.True(t, ok)
}
