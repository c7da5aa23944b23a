package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeded_Deterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000), "draw %d", i)
		require.Equal(t, a.Uint64(), b.Uint64(), "draw %d", i)
	}
}

func TestSeeded_DifferentSeeds(t *testing.T) {
	a := NewSeeded(1)
	b := NewSeeded(2)

	same := 0
	for i := 0; i < 50; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	assert.Less(t, same, 50)
}

func TestSeeded_ConcurrentUse(t *testing.T) {
	src := NewSeeded(7)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				n := src.IntN(10)
				if n < 0 || n >= 10 {
					t.Errorf("IntN(10) = %d out of range", n)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestOr(t *testing.T) {
	assert.Equal(t, Global(), Or(nil))

	src := NewSeeded(3)
	assert.Same(t, src, Or(src))
}

func TestPick(t *testing.T) {
	items := []string{"a", "b", "c"}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[Pick(Global(), items)] = true
	}
	assert.Len(t, seen, 3)
}

func TestChance_Bounds(t *testing.T) {
	src := Global()
	for i := 0; i < 100; i++ {
		assert.False(t, Chance(src, 0))
		assert.True(t, Chance(src, 10))
	}
}

func TestReader(t *testing.T) {
	buf1 := make([]byte, 32)
	buf2 := make([]byte, 32)

	n, err := Reader{Src: NewSeeded(9)}.Read(buf1)
	require.NoError(t, err)
	assert.Equal(t, 32, n)

	_, err = Reader{Src: NewSeeded(9)}.Read(buf2)
	require.NoError(t, err)
	assert.Equal(t, buf1, buf2)
}
