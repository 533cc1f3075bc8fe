package covmark

import "testing"

type Guard struct{}

func (g *Guard) Done() {}

type Counter struct{}

func (c *Counter) Hit() {}

func (c *Counter) Check(t testing.TB) *Guard { return &Guard{} }

func (c *Counter) CheckCount(t testing.TB, n int) *Guard { return &Guard{} }

func Hit(name string) {}

func Define(name string) *Counter { return &Counter{} }

func Check(t testing.TB, name string) *Guard { return &Guard{} }

func CheckCount(t testing.TB, name string, n int) *Guard { return &Guard{} }

func Run(t testing.TB, name string, fn func()) {}

func RunCount(t testing.TB, name string, n int, fn func()) {}

func Expect(t testing.TB, name string) *Guard { return &Guard{} }

func ExpectCount(t testing.TB, name string, n int) *Guard { return &Guard{} }
