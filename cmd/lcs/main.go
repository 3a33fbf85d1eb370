// Lcs finds the longest common substring of two files.
//
// The two inputs are joined with a 0x00 separator byte and a single suffix
// index is built over the combined text. Adjacent suffixes whose offsets fall
// on opposite sides of the separator witness common substrings; the longest
// such prefix, capped so it cannot run past the separator, is the answer.
// A 0x00 byte occurring inside binary input can only shorten a reported
// match, never fabricate one spanning both files.
//
// Usage:
//
//	go run ./cmd/lcs -a left.txt -b right.txt
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/tamirms/suffixindex"
	"github.com/tamirms/suffixindex/internal/corpus"
)

func run() error {
	aFlag := flag.String("a", "", "first input file")
	bFlag := flag.String("b", "", "second input file")
	maxFlag := flag.Int("max", 200, "truncate printed substring to this many bytes")
	flag.Parse()

	if *aFlag == "" || *bFlag == "" {
		return fmt.Errorf("both -a and -b flags are required")
	}

	var ca, cb *corpus.Corpus
	var g errgroup.Group
	g.Go(func() (err error) {
		ca, err = corpus.Load(*aFlag)
		return err
	})
	g.Go(func() (err error) {
		cb, err = corpus.Load(*bFlag)
		return err
	})
	if err := g.Wait(); err != nil {
		if ca != nil {
			_ = ca.Close()
		}
		if cb != nil {
			_ = cb.Close()
		}
		return err
	}
	defer func() { _ = ca.Close() }()
	defer func() { _ = cb.Close() }()

	fmt.Printf("corpus %s: %d bytes, fingerprint %016x\n", ca.Path(), ca.Len(), ca.Fingerprint())
	fmt.Printf("corpus %s: %d bytes, fingerprint %016x\n", cb.Path(), cb.Len(), cb.Fingerprint())

	// boundary is the offset of the separator in the combined text.
	boundary := ca.Len()
	combined := make([]byte, 0, ca.Len()+1+cb.Len())
	combined = append(combined, ca.Data()...)
	combined = append(combined, 0x00)
	combined = append(combined, cb.Data()...)

	idx := suffixindex.NewBytes(combined)

	best, bestOff := 0, 0
	for i := 1; i < idx.Length(); i++ {
		off, err := idx.IndexOf(i)
		if err != nil {
			return err
		}
		prev, err := idx.IndexOf(i - 1)
		if err != nil {
			return err
		}
		// Only pairs straddling the separator witness a cross-file match.
		if (off < boundary) == (prev < boundary) {
			continue
		}
		n, err := idx.LongestCommonPrefix(i)
		if err != nil {
			return err
		}
		// Cap the match at the separator for the left-side suffix.
		left := off
		if prev < left {
			left = prev
		}
		if limit := boundary - left; n > limit {
			n = limit
		}
		if n > best {
			best, bestOff = n, left
		}
	}

	if best == 0 {
		fmt.Println("no common substring")
		return nil
	}

	printed := best
	suffix := ""
	if printed > *maxFlag {
		printed = *maxFlag
		suffix = "..."
	}
	fmt.Printf("longest common substring: %d bytes\n", best)
	fmt.Printf("%q%s\n", combined[bestOff:bestOff+printed], suffix)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
