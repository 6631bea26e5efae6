package service

import (
	"math"
	"sync"
	"sync/atomic"
)

// floatCounter is a float64 accumulator updated with compare-and-swap.
type floatCounter struct {
	bits atomic.Uint64
}

func (f *floatCounter) add(v float64) {
	for {
		old := f.bits.Load()
		next := math.Float64bits(math.Float64frombits(old) + v)
		if f.bits.CompareAndSwap(old, next) {
			return
		}
	}
}

func (f *floatCounter) load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// drain returns the accumulated value and resets it in one step.
func (f *floatCounter) drain() float64 {
	return math.Float64frombits(f.bits.Swap(0))
}

// labelCounters maps a label to its own atomic counter, created on first use.
// Entries are never removed so an increment can't land on a counter that a
// concurrent drain has already detached.
type labelCounters struct {
	m sync.Map
}

func (c *labelCounters) inc(label string) {
	if v, ok := c.m.Load(label); ok {
		v.(*atomic.Int64).Add(1)
		return
	}
	v, _ := c.m.LoadOrStore(label, new(atomic.Int64))
	v.(*atomic.Int64).Add(1)
}

// drain swaps every counter to zero and returns the non-zero prior values.
func (c *labelCounters) drain() map[string]int64 {
	out := make(map[string]int64)
	c.m.Range(func(k, v any) bool {
		if n := v.(*atomic.Int64).Swap(0); n > 0 {
			out[k.(string)] = n
		}
		return true
	})
	return out
}

func (c *labelCounters) snapshot() map[string]int64 {
	out := make(map[string]int64)
	c.m.Range(func(k, v any) bool {
		if n := v.(*atomic.Int64).Load(); n > 0 {
			out[k.(string)] = n
		}
		return true
	})
	return out
}
