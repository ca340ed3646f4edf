// Package pointcloud holds helpers for sets of three-dimensional points: centroids,
// integer quantization for deduplication, and pairwise distances.
package pointcloud

import (
	"github.com/golang/geo/r3"
)

// NewVector convenience method for creating a vector.
func NewVector(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// Centroid returns the mean of the given points, or the origin when there are none.
func Centroid(points []r3.Vector) r3.Vector {
	if len(points) == 0 {
		return r3.Vector{}
	}
	var sum r3.Vector
	for _, p := range points {
		sum = sum.Add(p)
	}
	n := float64(len(points))
	return r3.Vector{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}
}
