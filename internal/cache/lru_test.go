package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRUGetSet(t *testing.T) {
	c := New[string, int](4)

	_, ok := c.Get("a")
	assert.False(t, ok)

	c.Set("a", 1)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	c.Set("a", 2)
	v, _ = c.Get("a")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](2)
	c.Set(1, 1)
	c.Set(2, 2)
	c.Get(1)
	c.Set(3, 3)

	_, ok := c.Get(2)
	assert.False(t, ok, "2 was least recently used")
	_, ok = c.Get(1)
	assert.True(t, ok)
	_, ok = c.Get(3)
	assert.True(t, ok)
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestLRUGetOrCreate(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	create := func() int {
		calls++
		return 7
	}

	assert.Equal(t, 7, c.GetOrCreate("k", create))
	assert.Equal(t, 7, c.GetOrCreate("k", create))
	assert.Equal(t, 1, calls)

	s := c.Stats()
	assert.Equal(t, DefaultCapacity, s.Capacity)
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 0.5, s.HitRate(), 1e-9)
}

func TestLRUClear(t *testing.T) {
	c := New[int, int](8)
	for i := 0; i < 5; i++ {
		c.Set(i, i)
	}
	c.Clear()
	assert.Zero(t, c.Len())
	_, ok := c.Get(0)
	assert.False(t, ok)
	assert.Zero(t, Stats{}.HitRate())
}

func TestLRUConcurrent(t *testing.T) {
	c := New[int, int](16)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				c.GetOrCreate((g*100+i)%32, func() int { return i })
			}
		}(g)
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 16)
}
