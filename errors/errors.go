// Package errors defines all exported error sentinels for the suffixindex library.
//
// This is the single source of truth for error values. The top-level
// suffixindex package and the internal corpus package both import from here,
// ensuring errors.Is checks work across package boundaries.
package errors

import "errors"

// Query errors
var (
	// ErrIndexOutOfRange signals a caller contract violation: the supplied
	// rank index falls outside the bound required by the operation. It is
	// deterministic for a given input and never retryable.
	ErrIndexOutOfRange = errors.New("suffixindex: suffix rank out of range")
)

// Validation errors
var (
	ErrNotPermutation = errors.New("suffixindex: index is not a permutation of text offsets")
	ErrNotSorted      = errors.New("suffixindex: suffixes are not in lexicographic order")
)

// Corpus errors
var (
	ErrEmptyCorpus = errors.New("suffixindex: corpus file is empty")
)
