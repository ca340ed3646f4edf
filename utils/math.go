package utils

// AbsInt returns the absolute value of n.
func AbsInt(n int) int {
	if n < 0 {
		return -1 * n
	}
	return n
}

// MaxInt returns the larger of a and b.
func MaxInt(a, b int) int {
	if a < b {
		return b
	}
	return a
}

// MinInt returns the smaller of a and b.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Choose2 returns the number of unordered pairs that can be drawn from n items.
func Choose2(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}
