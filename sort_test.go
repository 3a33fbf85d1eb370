package suffixindex

import (
	"math/rand"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// Category 1: ordering properties on random texts
// ---------------------------------------------------------------------------

func TestRandomTextsMatchReferenceOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(int64(42)<<32|int64(0)))

	cases := []struct {
		n     int
		alpha int
	}{
		{1, 2},
		{2, 2},
		{7, 2},   // below the default cutoff: pure insertion sort
		{8, 2},   // exactly at the cutoff boundary
		{9, 2},
		{50, 2},  // tiny alphabet forces deep equal-zone descent
		{100, 4},
		{200, 26},
		{500, 256}, // raw bytes, exercises the full alphabet
	}
	for _, tc := range cases {
		for rep := 0; rep < 5; rep++ {
			text := randomText(rng, tc.n, tc.alpha)
			checkIndex(t, New(text), text)
		}
	}
}

func TestCutoffVariantsMatchReferenceOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(int64(7)<<32|int64(0)))
	text := randomText(rng, 300, 3)

	for _, cutoff := range []int{0, 1, 2, 7, 8, 9, 64, 500} {
		idx := New(text, WithCutoff(cutoff))
		checkIndex(t, idx, text)
	}
}

func TestNegativeCutoffFallsBackToDefault(t *testing.T) {
	text := "three-way radix quicksort"
	idx := New(text, WithCutoff(-5))
	checkIndex(t, idx, text)
	if idx.Digest() != New(text).Digest() {
		t.Error("negative cutoff produced a different permutation than the default")
	}
}

// ---------------------------------------------------------------------------
// Category 2: adversarial texts
// ---------------------------------------------------------------------------

func TestAllEqualCharacters(t *testing.T) {
	// Worst case for the partitioner: every partition is one equal zone, so
	// the work stack carries the full depth the recursion would have.
	text := strings.Repeat("a", 50)
	idx := New(text)
	checkIndex(t, idx, text)

	// Sorted order is shortest first: offsets N-1, N-2, ..., 0.
	for i := 0; i < idx.Length(); i++ {
		off, err := idx.IndexOf(i)
		if err != nil {
			t.Fatalf("IndexOf(%d) failed: %v", i, err)
		}
		if want := idx.Length() - 1 - i; off != want {
			t.Errorf("IndexOf(%d) = %d, want %d", i, off, want)
		}
	}
}

func TestAllEqualCharactersLarge(t *testing.T) {
	if testing.Short() {
		t.Skip("quadratic worst case, skipped in short mode")
	}
	text := strings.Repeat("z", 2000)
	idx := New(text)
	if err := idx.Validate(); err != nil {
		t.Fatalf("Validate() failed: %v", err)
	}
}

func TestPeriodicText(t *testing.T) {
	// Long shared prefixes between suffixes one period apart.
	text := strings.Repeat("abab", 50)
	checkIndex(t, New(text), text)
}

func TestSortedAndReversedInput(t *testing.T) {
	asc := "abcdefghijklmnopqrstuvwxyz"
	checkIndex(t, New(asc), asc)

	desc := "zyxwvutsrqponmlkjihgfedcba"
	idx := New(desc)
	checkIndex(t, idx, desc)
	// Descending text sorts suffixes longest-last: offset N-1 holds "a".
	off, err := idx.IndexOf(0)
	if err != nil || off != len(desc)-1 {
		t.Errorf("IndexOf(0) = %d, %v, want %d, nil", off, err, len(desc)-1)
	}
}

func TestTextWithZeroBytes(t *testing.T) {
	// 0x00 is a real character, distinct from the end-of-suffix sentinel.
	text := "b\x00a\x00b\x00"
	checkIndex(t, New(text), text)
}

// ---------------------------------------------------------------------------
// Category 3: comparator primitives
// ---------------------------------------------------------------------------

func TestLessPrefixRule(t *testing.T) {
	x := New("aaab")

	// Suffix 1 "aab" vs suffix 0 "aaab": shared "aa", then 'b' > 'a'.
	if !x.less(0, 1, 0) {
		t.Error("less(0, 1, 0): \"aaab\" should be less than \"aab\"")
	}
	// Suffix 1 "aab" vs suffix 2 "ab" at depth 1: "ab" vs "b".
	if !x.less(1, 2, 1) {
		t.Error("less(1, 2, 1): \"ab\" should be less than \"b\" at depth 1")
	}
	// A strict prefix is less than the string it prefixes.
	y := New("aaa")
	if !y.less(1, 0, 0) {
		t.Error("less(1, 0, 0): \"aa\" should be less than \"aaa\"")
	}
	if y.less(0, 1, 0) {
		t.Error("less(0, 1, 0): \"aaa\" should not be less than \"aa\"")
	}
	// Reflexive case.
	if y.less(1, 1, 0) {
		t.Error("less(1, 1, 0): equal offsets must not compare less")
	}
}

func TestCompareKeySignConvention(t *testing.T) {
	x := New("banana")

	cases := []struct {
		key  string
		off  int
		sign int
	}{
		{"banana", 0, 0},  // both exhausted together
		{"ban", 0, -1},    // key is a strict prefix of the suffix
		{"bananas", 0, 1}, // suffix is a strict prefix of the key
		{"az", 5, 1},      // mismatch after the shared 'a'
		{"a", 5, 0},       // exact match with the last suffix
		{"c", 0, 1},       // first characters differ
		{"", 3, -1},       // empty key precedes every non-empty suffix
	}
	for _, tc := range cases {
		got := x.compareKey(tc.key, tc.off)
		if sign(got) != tc.sign {
			t.Errorf("compareKey(%q, %d) = %d, want sign %d", tc.key, tc.off, got, tc.sign)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestCharAtSentinel(t *testing.T) {
	x := New("ab")

	if got := x.charAt(0); got != 'a' {
		t.Errorf("charAt(0) = %d, want %d", got, 'a')
	}
	if got := x.charAt(2); got != sentinel {
		t.Errorf("charAt(2) = %d, want sentinel %d", got, sentinel)
	}
	// The sentinel orders below every real byte, including 0x00.
	if sentinel >= 0 {
		t.Error("sentinel must be negative to sort below byte 0")
	}
}

// ---------------------------------------------------------------------------
// Category 4: insertion sort path
// ---------------------------------------------------------------------------

func TestInsertionSortOnlyBuild(t *testing.T) {
	// A cutoff larger than any range means the builder never partitions:
	// the whole permutation is ordered by insertion sort alone.
	rng := rand.New(rand.NewSource(int64(99)<<32|int64(0)))
	text := randomText(rng, 40, 3)
	idx := New(text, WithCutoff(1000))
	checkIndex(t, idx, text)
}

func TestPartitionOnlyBuild(t *testing.T) {
	// Cutoff zero drives partitioning all the way down to single elements.
	rng := rand.New(rand.NewSource(int64(100)<<32|int64(0)))
	text := randomText(rng, 40, 3)
	idx := New(text, WithCutoff(0))
	checkIndex(t, idx, text)
}
