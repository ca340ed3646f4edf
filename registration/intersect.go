package registration

import "cmp"

// CountIntersect returns the size of the multiset intersection of two ascending slices.
func CountIntersect[T cmp.Ordered](a, b []T) int {
	var i, j, count int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			count++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return count
}
