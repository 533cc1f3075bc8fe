package covmark

import (
	"fmt"
	"testing"

	"jonwillia.ms/covmark/internal/rt"
)

// State is where a Guard is in its life.
type State int

const (
	Entered State = iota
	Passed
	Failed
	Suppressed
)

func (s State) String() string {
	switch s {
	case Entered:
		return "entered"
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Suppressed:
		return "suppressed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Guard is an open check. Close it with Done in the scope that created it,
// normally with defer.
type Guard struct {
	t       testing.TB
	rec     *rt.Record
	counter *Counter
	base    uint32
	state   State
}

// Check asserts that mark fires at least once before the guard is done.
func Check(t testing.TB, mark string) *Guard {
	t.Helper()
	return enter(t, mark, rt.AtLeastOnce, nil)
}

// CheckCount asserts that mark fires exactly n times before the guard is
// done.
func CheckCount(t testing.TB, mark string, n int) *Guard {
	t.Helper()
	if n < 0 {
		panic(fmt.Sprintf("covmark: negative expected count %d for mark %s", n, mark))
	}
	return enter(t, mark, n, nil)
}

func enter(t testing.TB, mark string, expected int, c *Counter) *Guard {
	g := &Guard{t: t, state: Entered}
	if !enabled {
		return g
	}
	setup()

	g.rec = rt.NewRecord(mark, expected)
	g.counter = c
	if c != nil {
		g.base = c.Load()
	}

	registry.Push(g.rec)
	gate.Inc()
	logger.Debug().Str("mark", mark).Int("expected", expected).Int("depth", registry.Depth()).Msg("check entered")
	return g
}

// Done closes the check and fails the test if the mark's hit count does
// not match. Nothing is asserted when the scope is already failing: either
// a panic is passing through this deferred call, in which case it is
// re-raised unchanged, or the test is marked failed or skipped (t.FailNow
// and t.SkipNow unwind with runtime.Goexit). Closing guards out of order
// always panics with a *MarkError wrapping ErrRegistryOrder. Calling Done
// again does nothing.
//
// A panic is only seen when Done itself is the deferred call, as in
// defer g.Done(). Wrapped in a deferred closure it cannot recover the
// panic and asserts as if the scope had returned normally.
func (g *Guard) Done() {
	if g.state != Entered {
		return
	}
	r := recover()
	g.t.Helper()
	g.exit(r)
	if r != nil {
		panic(r)
	}
}

// State reports whether the guard is open, and how it closed.
func (g *Guard) State() State { return g.state }

func (g *Guard) hits() uint64 {
	if g.counter != nil {
		// wraps with the counter
		return uint64(g.counter.Load() - g.base)
	}
	return g.rec.Hits()
}

// exit closes the guard. r is the value of a panic passing through Done,
// if any.
func (g *Guard) exit(r any) {
	g.t.Helper()
	if g.rec == nil {
		g.state = Suppressed
		return
	}
	mark := g.rec.Mark

	gate.Dec()
	if err := registry.Pop(g.rec); err != nil {
		g.state = Failed
		merr := &MarkError{Mark: mark, Hits: g.hits(), Expected: g.rec.Expected, Err: err}
		e := logger.Error().Str("mark", mark)
		if r != nil {
			e = e.Str("panic", fmt.Sprint(r))
		}
		e.Msg("guard closed out of order")
		panic(merr)
	}

	hits := g.hits()
	unwinding := r != nil
	if unwinding || g.t.Failed() || g.t.Skipped() {
		g.state = Suppressed
		logger.Info().Str("mark", mark).Uint64("hits", hits).Bool("panicking", unwinding).Msg("check suppressed")
		return
	}

	if err := verify(mark, hits, g.rec.Expected); err != nil {
		g.state = Failed
		logger.Debug().Str("mark", mark).Uint64("hits", hits).Msg("check failed")
		g.t.Errorf("%v", err)
		return
	}
	g.state = Passed
	if config.Verbose {
		g.t.Logf("mark %s was hit %d times", mark, hits)
	}
}
