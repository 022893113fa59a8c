package idempotency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_SetGet(t *testing.T) {
	cache := NewCache(time.Minute, 10)

	cache.Set("k", "result")
	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "result", got)

	_, ok = cache.Get("missing")
	assert.False(t, ok)
}

func TestCache_Expiry(t *testing.T) {
	cache := NewCache(time.Minute, 10)
	now := time.Now()
	cache.now = func() time.Time { return now }

	cache.Set("k", "result")
	now = now.Add(2 * time.Minute)

	_, ok := cache.Get("k")
	assert.False(t, ok)
}

func TestCache_EvictsOldest(t *testing.T) {
	cache := NewCache(time.Minute, 2)

	cache.Set("a", "1")
	cache.Set("b", "2")
	cache.Set("c", "3")

	_, ok := cache.Get("a")
	assert.False(t, ok)
	_, ok = cache.Get("b")
	assert.True(t, ok)
	_, ok = cache.Get("c")
	assert.True(t, ok)
}

func TestKey_StableAcrossMapOrder(t *testing.T) {
	a := map[string]any{"input_file": "/docs/a.pdf", "qps": 4.0, "no_dual": false}
	b := map[string]any{"no_dual": false, "qps": 4.0, "input_file": "/docs/a.pdf"}

	keyA, err := Key("translate_pdf", a)
	require.NoError(t, err)
	keyB, err := Key("translate_pdf", b)
	require.NoError(t, err)
	assert.Equal(t, keyA, keyB)
}

func TestKey_DistinguishesArgsAndTools(t *testing.T) {
	args := map[string]any{"input_file": "/docs/a.pdf"}
	other := map[string]any{"input_file": "/docs/b.pdf"}

	keyA, err := Key("translate_pdf", args)
	require.NoError(t, err)
	keyB, err := Key("translate_pdf", other)
	require.NoError(t, err)
	assert.NotEqual(t, keyA, keyB)

	keyC, err := Key("other_tool", args)
	require.NoError(t, err)
	assert.NotEqual(t, keyA, keyC)
}
