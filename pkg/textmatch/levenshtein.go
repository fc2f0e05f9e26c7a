package textmatch

// Distance computes the Levenshtein edit distance between a and b:
// the minimum number of single-character insertions, deletions, and
// substitutions needed to transform one into the other.
func Distance(a, b string) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Single-row DP over the (lb+1) x (la+1) matrix.
	prev := make([]int, la+1)
	curr := make([]int, la+1)
	for j := 0; j <= la; j++ {
		prev[j] = j
	}

	for i := 1; i <= lb; i++ {
		curr[0] = i
		for j := 1; j <= la; j++ {
			if b[i-1] == a[j-1] {
				curr[j] = prev[j-1]
			} else {
				curr[j] = 1 + min(prev[j-1], min(curr[j-1], prev[j]))
			}
		}
		prev, curr = curr, prev
	}

	return prev[la]
}

// Similarity normalizes the edit distance between a and b into [0,1],
// where 1.0 means identical. Two empty strings are identical; if only
// one side is empty there is nothing to compare and the result is 0.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	if a == "" || b == "" {
		return 0
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	return float64(maxLen-Distance(a, b)) / float64(maxLen)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
