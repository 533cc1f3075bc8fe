package covmark

import (
	"errors"
	"fmt"

	"jonwillia.ms/covmark/internal/rt"
)

var (
	// ErrMarkNeverHit is reported by a Check whose mark did not fire.
	ErrMarkNeverHit = errors.New("mark never hit")
	// ErrMarkHitWrongCount is reported by a CheckCount whose mark fired a
	// different number of times than expected.
	ErrMarkHitWrongCount = errors.New("mark hit wrong number of times")
	// ErrRegistryOrder means a guard was closed out of LIFO order or on a
	// different goroutine than the one that entered it.
	ErrRegistryOrder = rt.ErrOrder
)

// MarkError describes a failed check.
type MarkError struct {
	Mark     string
	Hits     uint64
	Expected int // rt.AtLeastOnce when any positive count passes
	Err      error
}

func (e *MarkError) Error() string {
	switch e.Err {
	case ErrMarkNeverHit:
		return fmt.Sprintf("mark %s was not hit", e.Mark)
	case ErrMarkHitWrongCount:
		return fmt.Sprintf("mark %s was hit %d times, expected %d", e.Mark, e.Hits, e.Expected)
	case ErrRegistryOrder:
		return fmt.Sprintf("mark %s: guard closed out of scope order: %v", e.Mark, e.Err)
	}
	return fmt.Sprintf("mark %s: %v", e.Mark, e.Err)
}

func (e *MarkError) Unwrap() error { return e.Err }

func verify(mark string, hits uint64, expected int) error {
	if expected == rt.AtLeastOnce {
		if hits == 0 {
			return &MarkError{Mark: mark, Expected: expected, Err: ErrMarkNeverHit}
		}
		return nil
	}
	if hits != uint64(expected) {
		return &MarkError{Mark: mark, Hits: hits, Expected: expected, Err: ErrMarkHitWrongCount}
	}
	return nil
}
