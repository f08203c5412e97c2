package reverse

import (
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"
)

func TestReverseProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		units := []rune(s)

		for _, strategy := range Strategies() {
			rev := strategy.Reverse(s)
			got := []rune(rev)

			if len(rev) != len(s) || len(got) != len(units) {
				t.Fatalf("%s: length changed: %q -> %q", strategy, s, rev)
			}
			for i := range units {
				if got[i] != units[len(units)-1-i] {
					t.Fatalf("%s: unit %d of %q is %q, want %q", strategy, i, rev, got[i], units[len(units)-1-i])
				}
			}
			if back := strategy.Reverse(rev); back != s {
				t.Fatalf("%s: double reversal of %q gave %q", strategy, s, back)
			}
		}
	})
}

func TestStrategiesAgreeOnArbitraryBytes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := string(rapid.SliceOf(rapid.Byte()).Draw(t, "bytes"))

		want := BySlicing(s)
		if got := ByIteration(s); got != want {
			t.Fatalf("iteration %q != slicing %q for %q", got, want, s)
		}
		if got := ByRecursion(s); got != want {
			t.Fatalf("recursion %q != slicing %q for %q", got, want, s)
		}

		var counts [256]int
		for i := 0; i < len(s); i++ {
			counts[s[i]]++
		}
		for i := 0; i < len(want); i++ {
			counts[want[i]]--
		}
		for b, n := range counts {
			if n != 0 {
				t.Fatalf("byte %#x count off by %d reversing %q", b, n, s)
			}
		}
	})
}

func TestRecursionDepthDoesNotChangeOutput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		depth := rapid.IntRange(1, 8).Draw(t, "depth")

		if got, want := reverseRecursive(s, depth), BySlicing(s); got != want {
			t.Fatalf("depth %d: got %q, want %q", depth, got, want)
		}
		if !utf8.ValidString(BySlicing(s)) {
			t.Fatalf("reversal of valid text %q is not valid UTF-8", s)
		}
	})
}
