package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Int63(), b.Int63())
	}
}

func TestRNG_Reset(t *testing.T) {
	r := NewRNG(7)

	first := make([]int, 20)
	for i := range first {
		first[i] = r.Intn(1000)
	}

	r.Reset()
	for i := range first {
		require.Equal(t, first[i], r.Intn(1000))
	}
}

func TestRNG_Seed(t *testing.T) {
	assert.Equal(t, int64(99), NewRNG(99).Seed())
}

func TestRNG_IntnBounds(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10)
	}
}

func TestRNG_ConcurrentUse(t *testing.T) {
	r := NewRNG(3)

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 1000; j++ {
				_ = r.Intn(100)
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
