// Kwic prints keyword-in-context lines: every occurrence of a query string
// in a file, with a window of surrounding text.
//
// It builds a suffix index over the file, finds the first suffix at or above
// the query via Rank, and walks forward through the sorted suffixes while
// they still begin with the query.
//
// Usage:
//
//	go run ./cmd/kwic -file corpus.txt -query "search term" -context 25
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/tamirms/suffixindex"
	"github.com/tamirms/suffixindex/internal/corpus"
)

func run() error {
	fileFlag := flag.String("file", "", "input file")
	queryFlag := flag.String("query", "", "string to search for")
	contextFlag := flag.Int("context", 25, "bytes of context on each side")
	flag.Parse()

	if *fileFlag == "" || *queryFlag == "" {
		return fmt.Errorf("both -file and -query flags are required")
	}

	c, err := corpus.Load(*fileFlag)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	idx := suffixindex.NewBytes(c.Data())
	data := c.Data()
	query := []byte(*queryFlag)

	// Every suffix beginning with the query compares >= the query, and Rank
	// on an exact whole-suffix match still lands at the start of the run
	// (suffixes are pairwise distinct), so the occurrences are exactly the
	// ranks from Rank(query) while the prefix continues to match.
	var offsets []int
	for i := idx.Rank(*queryFlag); i < idx.Length(); i++ {
		off, err := idx.IndexOf(i)
		if err != nil {
			return err
		}
		if !bytes.HasPrefix(data[off:], query) {
			break
		}
		offsets = append(offsets, off)
	}
	slices.Sort(offsets)

	fmt.Printf("%d occurrence(s) of %q in %s\n", len(offsets), *queryFlag, c.Path())
	for _, off := range offsets {
		lo := off - *contextFlag
		if lo < 0 {
			lo = 0
		}
		hi := off + len(query) + *contextFlag
		if hi > len(data) {
			hi = len(data)
		}
		fmt.Printf("%8d  ...%s...\n", off, oneLine(data[lo:hi]))
	}
	return nil
}

// oneLine flattens newlines so each match prints on a single line.
func oneLine(b []byte) []byte {
	out := bytes.Clone(b)
	for i, c := range out {
		if c == '\n' || c == '\r' || c == '\t' {
			out[i] = ' '
		}
	}
	return out
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
