package rt

import "math"

// AtLeastOnce is the Expected value of a record that only needs one hit.
const AtLeastOnce = -1

// Record is the state of one active check. It is owned by its guard and
// only reachable through the registry while the guard is live, so hits are
// only ever counted by the goroutine that entered it.
type Record struct {
	Mark     string
	Expected int
	hits     uint64
}

func NewRecord(mark string, expected int) *Record {
	return &Record{Mark: mark, Expected: expected}
}

// Hit counts one hit, saturating at the maximum.
func (r *Record) Hit() {
	if r.hits != math.MaxUint64 {
		r.hits++
	}
}

func (r *Record) Hits() uint64 { return r.hits }
