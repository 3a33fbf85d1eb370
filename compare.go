package suffixindex

// sentinel is the virtual character one position past the end of the text.
// It orders below every real byte (0..255), so a suffix that runs out of
// characters compares less than any suffix that continues. Using an explicit
// sentinel keeps the sort's depth-recursion rule alphabet-independent.
const sentinel = -1

// charAt returns the byte of the text at pos, widened to int, or sentinel
// when pos is one past the end. pos never exceeds len(text): the sort only
// advances depth through zones whose suffixes all share k real characters.
func (x *Index) charAt(pos int) int {
	if pos >= len(x.text) {
		return sentinel
	}
	return int(x.text[pos])
}

// less reports whether the suffix starting at i sorts before the suffix
// starting at j, given that their first k characters are known to be equal.
// Comparison starts at i+k / j+k. A suffix that ends first is less (prefix
// rule). Returns false for i == j.
func (x *Index) less(i, j, k int) bool {
	if i == j {
		return false
	}
	i += k
	j += k
	n := len(x.text)
	for i < n && j < n {
		if x.text[i] != x.text[j] {
			return x.text[i] < x.text[j]
		}
		i++
		j++
	}
	// Whichever position reached n first belongs to the shorter suffix.
	return i > j
}

// compareKey lexicographically compares key against the suffix starting at i,
// one byte at a time. The sign convention matches a three-way comparator:
// byte difference on the first mismatch, negative when the key is a strict
// prefix of the suffix, positive when the suffix is a strict prefix of the
// key, zero when both end together.
func (x *Index) compareKey(key string, i int) int {
	n := len(x.text)
	j := 0
	for ; i < n && j < len(key); i, j = i+1, j+1 {
		if key[j] != x.text[i] {
			return int(key[j]) - int(x.text[i])
		}
	}
	if i < n {
		return -1
	}
	if j < len(key) {
		return 1
	}
	return 0
}

// lcp returns the length of the longest common prefix of the suffixes
// starting at i and j.
func (x *Index) lcp(i, j int) int {
	n := len(x.text)
	size := 0
	for i < n && j < n && x.text[i] == x.text[j] {
		i++
		j++
		size++
	}
	return size
}
