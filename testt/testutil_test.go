package testt

import (
	"testing"
)

func TestTools(t *testing.T) {
	t.Run("LogPassing", func(t *testing.T) {
		Log(t, "not shown")
		Logf(t, "not %s", "shown")
	})
	t.Run("SeededIsDeterministic", func(t *testing.T) {
		one := RandSeeded(t, 42)
		two := RandSeeded(t, 42)
		for i := 0; i < 100; i++ {
			if a, b := one.Int63(), two.Int63(); a != b {
				t.Fatal(i, a, b)
			}
		}
	})
	t.Run("Strings", func(t *testing.T) {
		r := Rand(t)
		strs := Strings(r, 100, 3, 4)
		if len(strs) != 100 {
			t.Fatal(len(strs))
		}
		for _, s := range strs {
			if len(s) < 1 || len(s) > 4 {
				t.Error("length out of range", s)
			}
			for _, c := range s {
				if c < 'a' || c > 'c' {
					t.Error("character out of range", s)
				}
			}
		}
	})
	t.Run("StringsClampsArguments", func(t *testing.T) {
		strs := Strings(RandSeeded(t, 1), 10, 0, 0)
		for _, s := range strs {
			if len(s) != 1 {
				t.Error(s)
			}
		}
	})
}
