// Bench is a benchmarking tool for measuring suffix index build performance,
// query throughput, and memory usage.
//
// Usage:
//
//	go run ./cmd/bench -n 10000000 -alpha 26 -cutoff 8
//
// Flags:
//
//	-n        Text length in bytes (default: 10,000,000)
//	-alpha    Alphabet size, 0 for raw random bytes (default: 26)
//	-seed     Seed for the deterministic text generator (default: 0x1234)
//	-cutoff   Insertion-sort cutoff (default: 8)
//	-queries  Number of Rank queries to time (default: 1,000,000)
package main

import (
	"encoding/binary"
	"flag"
	"fmt"
	mrand "math/rand"
	"runtime"
	"syscall"
	"time"

	"github.com/spaolacci/murmur3"

	"github.com/tamirms/suffixindex"
)

// getMaxRSS returns the maximum resident set size in bytes.
// Uses getrusage(RUSAGE_SELF) which tracks peak RSS since process start.
func getMaxRSS() uint64 {
	var rusage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	// On macOS, MaxRss is in bytes. On Linux, it's in kilobytes.
	maxRSS := uint64(rusage.Maxrss)
	if runtime.GOOS == "linux" {
		maxRSS *= 1024 // Convert KB to bytes on Linux
	}
	return maxRSS
}

// generateText produces n deterministic pseudo-random bytes by hashing a
// counter with murmur3, so runs with the same seed benchmark identical input
// across machines and Go versions. alpha in [1, 255] folds each byte into an
// alphabet of that size; anything else leaves raw bytes.
func generateText(n int, seed uint32, alpha int) []byte {
	if alpha < 1 || alpha > 255 {
		alpha = 0
	}
	text := make([]byte, 0, n+16)
	var counter [8]byte
	for i := uint64(0); len(text) < n; i++ {
		binary.LittleEndian.PutUint64(counter[:], i)
		h1, h2 := murmur3.Sum128WithSeed(counter[:], seed)
		var block [16]byte
		binary.LittleEndian.PutUint64(block[0:8], h1)
		binary.LittleEndian.PutUint64(block[8:16], h2)
		text = append(text, block[:]...)
	}
	text = text[:n]
	if alpha > 0 {
		for i := range text {
			text[i] = 'a' + text[i]%byte(alpha)
		}
	}
	return text
}

func main() {
	nFlag := flag.Int("n", 10_000_000, "text length in bytes")
	alphaFlag := flag.Int("alpha", 26, "alphabet size (0 = raw random bytes)")
	seedFlag := flag.Uint("seed", 0x1234, "text generator seed")
	cutoffFlag := flag.Int("cutoff", 8, "insertion-sort cutoff")
	queriesFlag := flag.Int("queries", 1_000_000, "number of Rank queries to time")
	flag.Parse()

	n := *nFlag
	if n <= 0 {
		fmt.Println("-n must be positive")
		return
	}

	fmt.Println("Generating text...")
	text := generateText(n, uint32(*seedFlag), *alphaFlag)

	fmt.Println("Building index...")
	buildStart := time.Now()
	idx := suffixindex.NewBytes(text, suffixindex.WithCutoff(*cutoffFlag))
	buildDuration := time.Since(buildStart)

	fmt.Println("Validating index...")
	if err := idx.Validate(); err != nil {
		fmt.Printf("Validation failed: %v\n", err)
		return
	}

	fmt.Println("Running queries...")
	rng := mrand.New(mrand.NewSource(int64(*seedFlag)))
	queryStart := time.Now()
	var sink int
	for q := 0; q < *queriesFlag; q++ {
		off := rng.Intn(n)
		end := off + 8
		if end > n {
			end = n
		}
		sink += idx.Rank(string(text[off:end]))
	}
	queryDuration := time.Since(queryStart)
	_ = sink

	fmt.Printf("\nText:       %d bytes (alphabet %d, seed %#x)\n", n, *alphaFlag, *seedFlag)
	fmt.Printf("Digest:     %016x\n", idx.Digest())
	fmt.Printf("Build:      %v (%.2f MB/s, cutoff %d)\n",
		buildDuration, float64(n)/1e6/buildDuration.Seconds(), *cutoffFlag)
	fmt.Printf("Queries:    %d in %v (%.0f ops/s)\n",
		*queriesFlag, queryDuration, float64(*queriesFlag)/queryDuration.Seconds())
	fmt.Printf("Peak RSS:   %.1f MB\n", float64(getMaxRSS())/1e6)
}
