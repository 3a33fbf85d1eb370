package suffixindex

// defaultCutoff is the range size at or below which the builder switches from
// three-way partitioning to insertion sort. The optimum is system-dependent
// but anything between 5 and 15 works in most situations.
const defaultCutoff = 8

// sortJob is one pending range of the permutation: sort index[lo..hi] by the
// characters at depth k and beyond, given that all suffixes in the range
// share an equal prefix of length k.
type sortJob struct {
	lo, hi, depth int
}

// sort orders the whole permutation. It drives the three-way radix quicksort
// from an explicit work stack rather than recursion: an adversarial text
// (e.g. one repeated character) pushes the partition depth toward N, which
// would otherwise grow the call stack without bound.
func (x *Index) sort(cutoff int) {
	n := len(x.index)
	if n < 2 {
		return
	}

	stack := make([]sortJob, 0, 64)
	stack = append(stack, sortJob{0, n - 1, 0})

	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		lo, hi, k := job.lo, job.hi, job.depth
		if hi <= lo {
			continue
		}
		if hi <= lo+cutoff {
			x.insertionSort(lo, hi, k)
			continue
		}

		// Dijkstra three-way partition on the character at depth k of the
		// suffix at index[lo]. Invariant during the scan:
		//   index[lo..lt-1]  depth-k char <  v
		//   index[lt..i-1]   depth-k char == v
		//   index[i..gt]     unexamined
		//   index[gt+1..hi]  depth-k char >  v
		v := x.charAt(x.index[lo] + k)
		lt, gt := lo, hi
		i := lo + 1
		for i <= gt {
			t := x.charAt(x.index[i] + k)
			switch {
			case t < v:
				x.swap(lt, i)
				lt++
				i++
			case t > v:
				x.swap(i, gt)
				gt--
			default:
				i++
			}
		}

		stack = append(stack, sortJob{lo, lt - 1, k})
		if v != sentinel {
			// The equal zone shares k+1 characters; sort it one deeper.
			// When v is the sentinel the zone's suffixes ended at depth k,
			// and since suffix lengths are distinct it holds one element.
			stack = append(stack, sortJob{lt, gt, k + 1})
		}
		stack = append(stack, sortJob{gt + 1, hi, k})
	}
}

// insertionSort orders index[lo..hi] by adjacent compare-and-swap, comparing
// suffixes from depth k onward.
func (x *Index) insertionSort(lo, hi, k int) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && x.less(x.index[j], x.index[j-1], k); j-- {
			x.swap(j, j-1)
		}
	}
}

// swap exchanges index[i] and index[j].
func (x *Index) swap(i, j int) {
	x.index[i], x.index[j] = x.index[j], x.index[i]
}
