// Package covmark ties a test to the code path it is meant to exercise.
//
// Production code fires a named mark when a branch runs:
//
//	func safeDivide(a, b uint32) uint32 {
//		if b == 0 {
//			covmark.Hit("safe_divide_zero")
//			return 0
//		}
//		return a / b
//	}
//
// and the test asserts the mark fired before its scope ends:
//
//	func TestSafeDivideByZero(t *testing.T) {
//		defer covmark.Check(t, "safe_divide_zero").Done()
//		require.Zero(t, safeDivide(92, 0))
//	}
//
// Hits are only seen by checks entered on the same goroutine. Marks that
// must be counted across goroutines are declared with Define.
//
// Build with -tags nocovmark to compile every mark and check to a no-op.
package covmark
