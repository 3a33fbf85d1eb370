package suffixindex

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	sufferrors "github.com/tamirms/suffixindex/errors"
)

// Index is a read-only suffix array over an immutable text.
//
// index[i] holds the start offset of the i-th smallest suffix; suffixes are
// never materialized during construction, only offsets into the shared text
// buffer are moved. Ordering is bytewise lexicographic with the prefix rule:
// a strict prefix sorts before the string it prefixes.
//
// Thread Safety:
// - The Index is immutable after New/NewBytes returns
// - All methods are safe for unsynchronized concurrent use
type Index struct {
	text  []byte
	index []int
}

// New builds a suffix array for text. The text is copied once; construction
// always succeeds, including for the empty string.
func New(text string, opts ...BuildOption) *Index {
	return NewBytes([]byte(text), opts...)
}

// NewBytes builds a suffix array over data without copying it.
// The caller must ensure data is not modified while the Index is in use.
func NewBytes(data []byte, opts ...BuildOption) *Index {
	cfg := defaultBuildConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	x := &Index{
		text:  data,
		index: make([]int, len(data)),
	}
	for i := range x.index {
		x.index[i] = i
	}
	x.sort(cfg.cutoff)
	return x
}

// Length returns the number of characters in the text, which is also the
// number of suffixes in the index.
func (x *Index) Length() int {
	return len(x.text)
}

// IndexOf returns the start offset in the original text of the i-th smallest
// suffix. Returns ErrIndexOutOfRange unless 0 <= i < Length().
func (x *Index) IndexOf(i int) (int, error) {
	if i < 0 || i >= len(x.index) {
		return 0, fmt.Errorf("%w: i=%d, length=%d", sufferrors.ErrIndexOutOfRange, i, len(x.index))
	}
	return x.index[i], nil
}

// SelectString returns the i-th smallest suffix as a string. Cost is
// proportional to the suffix length; intended primarily for debugging and
// small extractions. Returns ErrIndexOutOfRange unless 0 <= i < Length().
func (x *Index) SelectString(i int) (string, error) {
	if i < 0 || i >= len(x.index) {
		return "", fmt.Errorf("%w: i=%d, length=%d", sufferrors.ErrIndexOutOfRange, i, len(x.index))
	}
	return string(x.text[x.index[i]:]), nil
}

// LongestCommonPrefix returns the length of the longest common prefix of the
// i-th smallest suffix and the (i-1)-st smallest suffix. Cost is proportional
// to the prefix length. Returns ErrIndexOutOfRange unless 1 <= i < Length().
func (x *Index) LongestCommonPrefix(i int) (int, error) {
	if i < 1 || i >= len(x.index) {
		return 0, fmt.Errorf("%w: i=%d, length=%d", sufferrors.ErrIndexOutOfRange, i, len(x.index))
	}
	return x.lcp(x.index[i], x.index[i-1]), nil
}

// Rank returns the number of suffixes strictly less than key, in [0, Length()],
// via binary search. When key exactly matches one or more suffixes, the search
// stops at the first midpoint that compares equal, so the result is one valid
// rank among the equal run, not necessarily the leftmost. Callers that need
// leftmost semantics must scan backward from the returned rank.
func (x *Index) Rank(key string) int {
	lo, hi := 0, len(x.index)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		cmp := x.compareKey(key, x.index[mid])
		switch {
		case cmp < 0:
			hi = mid - 1
		case cmp > 0:
			lo = mid + 1
		default:
			return mid
		}
	}
	return lo
}

// Validate checks the structural invariants of the built index: the offsets
// form a permutation of [0, Length()) and adjacent suffixes are in
// non-decreasing lexicographic order. A nil return means both invariants
// hold. Cost is O(N) offsets plus O(total LCP) character compares.
func (x *Index) Validate() error {
	n := len(x.index)
	seen := make([]bool, n)
	for _, off := range x.index {
		if off < 0 || off >= n || seen[off] {
			return fmt.Errorf("%w: offset %d", sufferrors.ErrNotPermutation, off)
		}
		seen[off] = true
	}
	for i := 1; i < n; i++ {
		if x.less(x.index[i], x.index[i-1], 0) {
			return fmt.Errorf("%w: rank %d", sufferrors.ErrNotSorted, i)
		}
	}
	return nil
}

// Digest returns an xxHash64 over the text followed by the sorted offsets.
// Two indexes over the same text built with any options produce the same
// digest; used to confirm build determinism across configurations.
func (x *Index) Digest() uint64 {
	h := xxhash.New()
	_, _ = h.Write(x.text)
	var buf [8]byte
	for _, off := range x.index {
		binary.LittleEndian.PutUint64(buf[:], uint64(off))
		_, _ = h.Write(buf[:])
	}
	return h.Sum64()
}
