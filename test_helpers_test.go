package suffixindex

import (
	"math/rand"
	"sort"
	"testing"
)

// randomText produces n deterministic pseudo-random bytes drawn from an
// alphabet of the given size starting at 'a'. alpha outside [1, 255] yields
// raw bytes.
func randomText(rng *rand.Rand, n, alpha int) string {
	buf := make([]byte, n)
	for i := range buf {
		b := byte(rng.Uint64())
		if alpha > 0 && alpha < 256 {
			b = 'a' + b%byte(alpha)
		}
		buf[i] = b
	}
	return string(buf)
}

// sortedSuffixes materializes and sorts all suffixes of text, as a reference
// for the index's ordering. Quadratic space; only for small test inputs.
func sortedSuffixes(text string) []string {
	suffixes := make([]string, len(text))
	for i := range suffixes {
		suffixes[i] = text[i:]
	}
	sort.Strings(suffixes)
	return suffixes
}

// checkIndex verifies the permutation and sortedness invariants of idx
// against the reference ordering of text.
func checkIndex(t *testing.T, idx *Index, text string) {
	t.Helper()

	if idx.Length() != len(text) {
		t.Fatalf("Length() = %d, want %d", idx.Length(), len(text))
	}
	if err := idx.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}

	want := sortedSuffixes(text)
	for i, w := range want {
		got, err := idx.SelectString(i)
		if err != nil {
			t.Fatalf("SelectString(%d) failed: %v", i, err)
		}
		if got != w {
			t.Fatalf("SelectString(%d) = %q, want %q", i, got, w)
		}
	}
}
