package covmark_test

import (
	"fmt"
	"runtime"
	"testing"

	"jonwillia.ms/covmark"
)

// recorder stands in for the enclosing test so failures can be inspected
// instead of failing the real one.
type recorder struct {
	testing.TB
	failed   bool
	skipped  bool
	errs     []string
	logs     []string
	cleanups []func()
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func (r *recorder) Logf(format string, args ...any) {
	r.logs = append(r.logs, fmt.Sprintf(format, args...))
}

// FailNow must be called on a goroutine the test owns, like testing.T's.
func (r *recorder) FailNow() {
	r.failed = true
	runtime.Goexit()
}

func (r *recorder) Failed() bool  { return r.failed }
func (r *recorder) Skipped() bool { return r.skipped }

func (r *recorder) Cleanup(f func()) { r.cleanups = append(r.cleanups, f) }

func (r *recorder) finish() {
	for i := len(r.cleanups) - 1; i >= 0; i-- {
		r.cleanups[i]()
	}
	r.cleanups = nil
}

func safeDivide(dividend, divisor uint32) uint32 {
	if divisor == 0 {
		covmark.Hit("save_divide_zero")
		return 0
	}
	covmark.Hit("divide_ok")
	return dividend / divisor
}

type parsedDate struct{ y, m, d string }

func parseDate(s string) (parsedDate, bool) {
	if len(s) != 10 {
		covmark.Hit("short_date")
		return parsedDate{}, false
	}
	if s[4] != '-' || s[7] != '-' {
		covmark.Hit("bad_dashes")
		return parsedDate{}, false
	}
	return parsedDate{s[:4], s[5:7], s[8:]}, true
}

// coveredDropper fires a mark when it is released.
type coveredDropper struct{}

func (coveredDropper) Close() error {
	covmark.Hit("covered_dropper_drops")
	return nil
}
