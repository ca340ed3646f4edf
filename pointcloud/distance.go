package pointcloud

import (
	"math"
	"sort"

	"github.com/golang/geo/r3"
)

// RoundedDistance returns the euclidean distance between a and b rounded to the nearest integer.
// Distances are unchanged by rotation and translation, so they can be compared across frames.
func RoundedDistance(a, b r3.Vector) int {
	return int(math.Round(a.Distance(b)))
}

// DistanceMatrix returns the NxN matrix of rounded distances between points. The matrix is symmetric
// with zeros on the diagonal.
func DistanceMatrix(points []r3.Vector) [][]int {
	n := len(points)
	m := make([][]int, n)
	for i := range m {
		m[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := RoundedDistance(points[i], points[j])
			m[i][j] = d
			m[j][i] = d
		}
	}
	return m
}

// DistanceProfiles returns, for each point, its sorted rounded distances to every point in the set
// (including the zero distance to itself).
func DistanceProfiles(points []r3.Vector) [][]int {
	profiles := DistanceMatrix(points)
	for _, row := range profiles {
		sort.Ints(row)
	}
	return profiles
}
