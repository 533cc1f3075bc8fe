package rt

import (
	"errors"
	"slices"
	"sync"

	"jonwillia.ms/covmark/internal/goid"
)

// ErrOrder is returned by Pop when the record being removed is not the
// innermost one entered on the calling goroutine.
var ErrOrder = errors.New("registry order violation")

// Registry keeps a LIFO stack of active records per goroutine. A stack is
// only read or written by the goroutine it belongs to; the index itself is
// the only shared structure.
type Registry struct {
	stacks sync.Map // goroutine id -> *stack
}

type stack struct {
	recs []*Record
}

func (r *Registry) current() *stack {
	v, ok := r.stacks.Load(goid.ID())
	if !ok {
		return nil
	}
	return v.(*stack)
}

// Push makes rec the innermost record of the calling goroutine.
func (r *Registry) Push(rec *Record) {
	id := goid.ID()
	v, ok := r.stacks.Load(id)
	if !ok {
		v, _ = r.stacks.LoadOrStore(id, &stack{})
	}
	s := v.(*stack)
	s.recs = append(s.recs, rec)
}

// Pop removes rec from the calling goroutine's stack. If rec is not on top
// it is still removed when present, so later guards see a consistent
// stack, and ErrOrder is returned.
func (r *Registry) Pop(rec *Record) error {
	id := goid.ID()
	v, ok := r.stacks.Load(id)
	if !ok {
		return ErrOrder
	}
	s := v.(*stack)
	var err error
	switch i := slices.Index(s.recs, rec); {
	case i < 0:
		return ErrOrder
	case i == len(s.recs)-1:
		s.recs[i] = nil
		s.recs = s.recs[:i]
	default:
		s.recs = slices.Delete(s.recs, i, i+1)
		err = ErrOrder
	}
	if len(s.recs) == 0 {
		r.stacks.Delete(id)
	}
	return err
}

// ForEachMatching calls f for every record on the calling goroutine's
// stack whose mark is name, outermost first.
func (r *Registry) ForEachMatching(name string, f func(*Record)) {
	s := r.current()
	if s == nil {
		return
	}
	for _, rec := range s.recs {
		if rec.Mark == name {
			f(rec)
		}
	}
}

// Depth is the number of records active on the calling goroutine.
func (r *Registry) Depth() int {
	s := r.current()
	if s == nil {
		return 0
	}
	return len(s.recs)
}
