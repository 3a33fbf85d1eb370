// Spell checks words against a newline-separated word list.
//
// It builds a suffix index over the word list once, then locates each query
// word with Rank and walks the matching suffixes, accepting an occurrence
// only when it spans a whole line of the list.
//
// Usage:
//
//	go run ./cmd/spell -dict /usr/share/dict/words hello wrold
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/tamirms/suffixindex"
	"github.com/tamirms/suffixindex/internal/corpus"
)

// contains reports whether word appears as a whole line of the indexed list.
func contains(idx *suffixindex.Index, data []byte, word string) (bool, error) {
	w := []byte(word)
	for i := idx.Rank(word); i < idx.Length(); i++ {
		off, err := idx.IndexOf(i)
		if err != nil {
			return false, err
		}
		if !bytes.HasPrefix(data[off:], w) {
			return false, nil
		}
		startOK := off == 0 || data[off-1] == '\n'
		end := off + len(w)
		endOK := end == len(data) || data[end] == '\n'
		if startOK && endOK {
			return true, nil
		}
	}
	return false, nil
}

func run() error {
	dictFlag := flag.String("dict", "", "newline-separated word list")
	flag.Parse()

	if *dictFlag == "" {
		return fmt.Errorf("missing required -dict flag")
	}
	if flag.NArg() == 0 {
		return fmt.Errorf("no words to check")
	}

	c, err := corpus.Load(*dictFlag)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	idx := suffixindex.NewBytes(c.Data())

	misspelled := 0
	for _, word := range flag.Args() {
		ok, err := contains(idx, c.Data(), word)
		if err != nil {
			return err
		}
		if ok {
			fmt.Printf("%s: ok\n", word)
		} else {
			fmt.Printf("%s: not in word list\n", word)
			misspelled++
		}
	}
	if misspelled > 0 {
		os.Exit(1)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
