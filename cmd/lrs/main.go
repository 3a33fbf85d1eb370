// Lrs finds the longest repeated substring in a file.
//
// It builds a suffix index over the file and scans the longest-common-prefix
// of every pair of adjacent suffixes; the maximum is the longest substring
// that occurs at least twice.
//
// Usage:
//
//	go run ./cmd/lrs -file corpus.txt
//
// Flags:
//
//	-file   Input file (required)
//	-max    Truncate the printed substring to this many bytes (default: 200)
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tamirms/suffixindex"
	"github.com/tamirms/suffixindex/internal/corpus"
)

func run() error {
	fileFlag := flag.String("file", "", "input file")
	maxFlag := flag.Int("max", 200, "truncate printed substring to this many bytes")
	flag.Parse()

	if *fileFlag == "" {
		return fmt.Errorf("missing required -file flag")
	}

	c, err := corpus.Load(*fileFlag)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	fmt.Printf("corpus %s: %d bytes, fingerprint %016x\n", c.Path(), c.Len(), c.Fingerprint())

	idx := suffixindex.NewBytes(c.Data())

	best, bestRank := 0, 0
	for i := 1; i < idx.Length(); i++ {
		n, err := idx.LongestCommonPrefix(i)
		if err != nil {
			return err
		}
		if n > best {
			best, bestRank = n, i
		}
	}

	if best == 0 {
		fmt.Println("no repeated substring")
		return nil
	}

	off, err := idx.IndexOf(bestRank)
	if err != nil {
		return err
	}
	prev, err := idx.IndexOf(bestRank - 1)
	if err != nil {
		return err
	}

	printed := best
	suffix := ""
	if printed > *maxFlag {
		printed = *maxFlag
		suffix = "..."
	}
	fmt.Printf("longest repeated substring: %d bytes, at offsets %d and %d\n", best, off, prev)
	fmt.Printf("%q%s\n", c.Data()[off:off+printed], suffix)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
