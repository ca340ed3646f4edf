package registration

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/golang/geo/r3"

	"go.viam.com/beaconmap/pointcloud"
)

// Fingerprint is the set of rounded pairwise distances between the beacons of one scanner.
// Repeated distances are stored once.
type Fingerprint struct {
	distances *roaring.Bitmap
}

// NewFingerprint computes the fingerprint of a scanner's beacons.
func NewFingerprint(points []r3.Vector) *Fingerprint {
	distances := roaring.New()
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			distances.Add(uint32(pointcloud.RoundedDistance(points[i], points[j])))
		}
	}
	distances.RunOptimize()
	return &Fingerprint{distances: distances}
}

// Len returns the number of distinct distances.
func (f *Fingerprint) Len() int {
	return int(f.distances.GetCardinality())
}

// Distances returns the distinct distances in ascending order.
func (f *Fingerprint) Distances() []uint32 {
	return f.distances.ToArray()
}

// Shared returns the distances present in both fingerprints.
func (f *Fingerprint) Shared(other *Fingerprint) *roaring.Bitmap {
	return roaring.And(f.distances, other.distances)
}

// Overlap returns how many distances the two fingerprints share.
func (f *Fingerprint) Overlap(other *Fingerprint) int {
	return int(f.distances.AndCardinality(other.distances))
}
