package a

import (
	"testing"

	"jonwillia.ms/covmark"
)

const dividedByZero = "divided_by_zero"

var counter = covmark.Define("shared")

func divide(a, b int) int {
	if b == 0 {
		covmark.Hit(dividedByZero)
		return 0
	}
	covmark.Hit("divide_ok")
	return a / b
}

func dynamic(name string) {
	covmark.Hit(name) // want `mark name passed to covmark.Hit must be a constant string`

	covmark.Define(name) // want `mark name passed to covmark.Define must be a constant string`

	counter.Hit()
}

func TestGood(t *testing.T) {
	defer covmark.Check(t, dividedByZero).Done()
	defer covmark.CheckCount(t, "divide_ok", 1).Done()
	defer counter.Check(t).Done()
	covmark.Expect(t, "expected")
	covmark.Run(t, "run", func() {})

	g := covmark.Check(t, "scoped")
	divide(1, 1)
	g.Done()
}

func TestBad(t *testing.T, name string) {
	covmark.Check(t, "lost") // want `result of covmark.Check is discarded; close the guard with defer`

	counter.CheckCount(t, 2) // want `result of \(\*covmark.Counter\).CheckCount is discarded`

	covmark.RunCount(t, name, 1, nil) // want `mark name passed to covmark.RunCount must be a constant string`

	defer covmark.Check(t, name).Done() // want `mark name passed to covmark.Check must be a constant string`

	g := covmark.Check(t, "wrapped")
	defer func() {
		g.Done() // want `Guard.Done called from a deferred closure cannot see panics`
	}()
}

func open(t *testing.T) *covmark.Guard {
	return covmark.Check(t, "escaping") // want `guard escapes the scope that opened it`
}
