// Package rt holds the runtime state shared by marks and guards: the
// process-wide enablement gate and the per-goroutine activation registry.
package rt

import "sync/atomic"

// Gate counts the guards currently entered anywhere in the process.
// Hit consults it before doing any work, so it must stay a single load.
type Gate struct {
	n atomic.Int64
}

func (g *Gate) Inc() { g.n.Add(1) }

func (g *Gate) Dec() { g.n.Add(-1) }

// Active reports whether at least one guard is live.
func (g *Gate) Active() bool { return g.n.Load() > 0 }
