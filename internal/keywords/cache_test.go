package keywords

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_HitReturnsSameKeywords(t *testing.T) {
	e := NewExtractor(nil, Options{})
	c := NewCache(e, 0)
	text := "Go engineer with Kubernetes experience"

	first := c.Extract(text)
	second := c.Extract(text)

	assert.Equal(t, e.Extract(text), first)
	assert.Equal(t, first, second)

	hits, misses := c.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, 1, c.Len())
}

func TestCache_ReturnsCopies(t *testing.T) {
	c := NewCache(NewExtractor(nil, Options{}), 0)
	text := "Python and SQL"

	first := c.Extract(text)
	require.NotEmpty(t, first)
	first[0].Term = "mutated"

	assert.NotEqual(t, "mutated", c.Extract(text)[0].Term)
}

func TestCache_Bounded(t *testing.T) {
	c := NewCache(NewExtractor(nil, Options{}), 3)

	for i := 0; i < 10; i++ {
		c.Extract(fmt.Sprintf("description number%d", i))
	}

	assert.LessOrEqual(t, c.Len(), 3)
}

func TestCache_ConcurrentUse(t *testing.T) {
	e := NewExtractor(nil, Options{})
	c := NewCache(e, 16)
	texts := []string{
		"Go and Kubernetes",
		"Python data engineer",
		"React, TypeScript and GraphQL",
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := texts[i%len(texts)]
			assert.Equal(t, e.Extract(text), c.Extract(text))
		}(i)
	}
	wg.Wait()

	hits, misses := c.Stats()
	assert.Equal(t, int64(50), hits+misses)
	assert.Equal(t, len(texts), c.Len())
}
