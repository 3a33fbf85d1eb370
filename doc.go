// Package suffixindex implements a suffix array over an immutable text with
// rank, longest-common-prefix, and suffix-selection queries.
//
// The index holds one shared text buffer and a permutation of suffix start
// offsets sorted in lexicographic order; no suffix is ever materialized as
// its own string during construction. Sorting uses a three-way radix
// quicksort (partition by one character position into less/equal/greater
// zones, descend one character deeper into the equal zone) with an
// insertion-sort cutoff for small ranges, driven from an explicit work stack.
// A random text of length N costs ~2N ln N character compares to build; a
// degenerate text of one repeated character degrades toward quadratic.
//
// # Basic Usage
//
// Building and querying an index:
//
//	idx := suffixindex.New("banana")
//
//	off, err := idx.IndexOf(0) // 5: "a" is the smallest suffix
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	n := idx.Rank("an") // number of suffixes strictly less than "an"
//	fmt.Println(off, n)
//
// Over a caller-owned byte slice (no copy; the slice must not be modified
// while the Index is in use):
//
//	idx := suffixindex.NewBytes(data)
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Public API: index.go (New, NewBytes, queries), options.go (BuildOption)
//   - Sorting: sort.go (three-way radix quicksort, insertion-sort cutoff)
//   - Comparison primitives: compare.go (suffix order, key compare, sentinel)
//   - Error sentinels: errors/ (shared across packages)
//   - File input for the tools: internal/corpus/ (mmap, fadvise, fingerprint)
//   - Tools: cmd/lrs, cmd/lcs, cmd/kwic, cmd/spell, cmd/bench
package suffixindex
