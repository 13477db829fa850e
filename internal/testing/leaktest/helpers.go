// Package leaktest provides goroutine leak checks for tests of
// components that own background goroutines, like the SSE hub.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// settleDelay bounds how long Check waits for goroutines to exit
// before declaring a leak.
const settleDelay = 500 * time.Millisecond

// GoroutineChecker compares goroutine counts around a test body.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Let goroutines started by the harness itself settle first.
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{t: t, before: runtime.NumGoroutine()}
}

// Check fails the test if the goroutine count grew past tolerance.
// Goroutines that have returned but not yet been reaped make the count
// lag, so it polls until the count settles or the deadline passes.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(settleDelay)
	var after int
	for {
		runtime.Gosched()
		runtime.GC()
		after = runtime.NumGoroutine()
		if after-g.before <= tolerance || time.Now().After(deadline) {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if leaked := after - g.before; leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if any goroutine it
// started is still running afterwards.
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
