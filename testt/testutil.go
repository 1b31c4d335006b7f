// Package testt (for test tools), provides a couple of useful helpers
// for common test patterns. To be used as a optional companion of the
// assert/check library.
package testt

import (
	"math/rand"
	"testing"
	"time"
)

// Log calls t.Log with the given arguments *if* the test has failed.
func Log(t testing.TB, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Log(args...)
	}
}

// Logf calls t.Logf with the given arguments *if* the test has failed.
func Logf(t testing.TB, format string, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Logf(format, args...)
	}
}

// Rand returns a pseudo-random source seeded from the clock. The seed
// is logged during the test's cleanup if the test fails, so that a
// failing randomized run can be reproduced with RandSeeded.
func Rand(t testing.TB) *rand.Rand {
	t.Helper()
	return RandSeeded(t, time.Now().UnixNano())
}

// RandSeeded returns a pseudo-random source with a fixed seed, and
// logs the seed if the test fails.
func RandSeeded(t testing.TB, seed int64) *rand.Rand {
	t.Helper()
	t.Cleanup(func() { Logf(t, "random seed: %d", seed) })
	return rand.New(rand.NewSource(seed))
}

// Strings produces a slice of size random strings, each drawn from
// an alphabet of the given width, with lengths between one and
// maxLen. Narrow alphabets and short strings produce many duplicate
// values.
func Strings(r *rand.Rand, size, width, maxLen int) []string {
	if width < 1 || width > 26 {
		width = 26
	}
	if maxLen < 1 {
		maxLen = 1
	}

	out := make([]string, size)
	buf := make([]byte, maxLen)
	for idx := range out {
		n := 1 + r.Intn(maxLen)
		for i := 0; i < n; i++ {
			buf[i] = byte('a' + r.Intn(width))
		}
		out[idx] = string(buf[:n])
	}
	return out
}
