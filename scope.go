package covmark

import "testing"

// Run calls fn and asserts that mark fired at least once while it ran.
func Run(t testing.TB, mark string, fn func()) {
	t.Helper()
	defer Check(t, mark).Done()
	fn()
}

// RunCount calls fn and asserts that mark fired exactly n times while it
// ran.
func RunCount(t testing.TB, mark string, n int, fn func()) {
	t.Helper()
	defer CheckCount(t, mark, n).Done()
	fn()
}

// Expect asserts that mark fires at least once before t finishes. The
// check is closed by t.Cleanup, so it must be entered on the test's own
// goroutine and after any guard that is closed by a cleanup registered
// later.
func Expect(t testing.TB, mark string) *Guard {
	t.Helper()
	g := Check(t, mark)
	t.Cleanup(g.Done)
	return g
}

func ExpectCount(t testing.TB, mark string, n int) *Guard {
	t.Helper()
	g := CheckCount(t, mark, n)
	t.Cleanup(g.Done)
	return g
}
