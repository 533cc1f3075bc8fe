package covmark

import "jonwillia.ms/covmark/internal/rt"

var (
	gate     rt.Gate
	registry rt.Registry
)

// Hit fires the named mark. Every check for name entered on the calling
// goroutine and still open observes it, nested ones included. With no
// check open anywhere in the process Hit does nothing.
func Hit(name string) {
	if !enabled || !gate.Active() {
		return
	}
	dispatch(name)
}

func dispatch(name string) {
	registry.ForEachMatching(name, (*rt.Record).Hit)
	if c := lookup(name); c != nil {
		c.n.Add(1)
	}
}
