package overview

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoizerSharesOneComputePerPass(t *testing.T) {
	m := NewMemoizer()
	var computes atomic.Int64
	compute := func() *Payload {
		computes.Add(1)
		time.Sleep(20 * time.Millisecond)
		return Assemble(DefaultSnapshot(time.Now()))
	}

	var wg sync.WaitGroup
	results := make([]*Payload, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.Get("pass-1", "co1", "u1", compute)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int64(1), computes.Load())
	for _, p := range results[1:] {
		assert.Same(t, results[0], p)
	}
}

func TestMemoizerSeparatesTenants(t *testing.T) {
	m := NewMemoizer()
	var computes atomic.Int64
	compute := func() *Payload {
		computes.Add(1)
		return Assemble(DefaultSnapshot(time.Now()))
	}

	m.Get("pass-1", "co1", "u1", compute)
	m.Get("pass-1", "co2", "u1", compute)
	m.Get("pass-1", "co1", "u2", compute)

	assert.Equal(t, int64(3), computes.Load())
}

func TestMemoizerEndPassReleasesResults(t *testing.T) {
	m := NewMemoizer()
	var computes atomic.Int64
	compute := func() *Payload {
		computes.Add(1)
		return Assemble(DefaultSnapshot(time.Now()))
	}

	m.Get("pass-1", "co1", "u1", compute)
	m.Get("pass-1", "co1", "u1", compute)
	assert.Equal(t, int64(1), computes.Load())

	m.EndPass("pass-1")

	m.Get("pass-1", "co1", "u1", compute)
	assert.Equal(t, int64(2), computes.Load())
}

func TestMemoizerEndPassUnknownPassIsNoop(t *testing.T) {
	m := NewMemoizer()
	m.EndPass("never-started")
}
