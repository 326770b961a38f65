package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRU(t *testing.T) {
	var evicted []string
	cache := NewLRU[int](2, func(key string, _ int) {
		evicted = append(evicted, key)
	})

	cache.Set("a", 1)
	cache.Set("b", 2)

	// Touch a so b becomes the oldest
	v, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	cache.Set("c", 3)
	assert.Equal(t, []string{"b"}, evicted)
	assert.Equal(t, 2, cache.Len())

	_, ok = cache.Get("b")
	assert.False(t, ok)

	cache.Set("a", 10)
	assert.Equal(t, []string{"b", "a"}, evicted)
	v, _ = cache.Get("a")
	assert.Equal(t, 10, v)

	cache.Purge()
	assert.Equal(t, 0, cache.Len())
	assert.ElementsMatch(t, []string{"b", "a", "c", "a"}, evicted)
}
