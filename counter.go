package covmark

import (
	"sync"
	"sync/atomic"
	"testing"

	"jonwillia.ms/covmark/internal/rt"
)

var counters sync.Map // mark name -> *Counter

// Counter is a mark whose hits are counted process-wide, from any
// goroutine. Checks on a Counter compare its value on entry and exit, so
// hits fired by unrelated code running at the same time are counted too.
type Counter struct {
	name string
	n    atomic.Uint32
}

// Define returns the shared counter for mark, creating it on first use.
// Once defined, Hit(mark) also advances the counter.
func Define(mark string) *Counter {
	if c := lookup(mark); c != nil {
		return c
	}
	v, _ := counters.LoadOrStore(mark, &Counter{name: mark})
	return v.(*Counter)
}

func lookup(mark string) *Counter {
	v, ok := counters.Load(mark)
	if !ok {
		return nil
	}
	return v.(*Counter)
}

func (c *Counter) Name() string { return c.name }

// Load returns the raw counter value. It wraps around.
func (c *Counter) Load() uint32 { return c.n.Load() }

// Hit fires the mark: the shared counter always advances, and checks
// entered by name on this goroutine observe it like a plain Hit.
func (c *Counter) Hit() {
	if !enabled {
		return
	}
	c.n.Add(1)
	if gate.Active() {
		registry.ForEachMatching(c.name, (*rt.Record).Hit)
	}
}

// Check asserts the counter advances at least once before the guard is
// done.
func (c *Counter) Check(t testing.TB) *Guard {
	t.Helper()
	return enter(t, c.name, rt.AtLeastOnce, c)
}

// CheckCount asserts the counter advances exactly n times before the guard
// is done.
func (c *Counter) CheckCount(t testing.TB, n int) *Guard {
	t.Helper()
	if n < 0 {
		panic("covmark: negative expected count for mark " + c.name)
	}
	return enter(t, c.name, n, c)
}
