package registration

import (
	"github.com/RoaringBitmap/roaring/v2"

	"go.viam.com/beaconmap/utils"
)

// CandidatePair is a pair of scanners whose fingerprints overlap enough that they may share beacons.
// A is always less than B.
type CandidatePair struct {
	A, B   int
	Shared *roaring.Bitmap
}

// MinSharedDistances returns the number of distances n common beacons produce, i.e. n choose 2.
func MinSharedDistances(n int) int {
	return utils.Choose2(n)
}

// FindCandidatePairs returns every pair i < j whose fingerprints share at least minShared
// distances, ordered by (i, j). Passing the filter does not guarantee the pair overlaps.
func FindCandidatePairs(fingerprints []*Fingerprint, minShared int) []CandidatePair {
	var pairs []CandidatePair
	for i := 0; i < len(fingerprints); i++ {
		for j := i + 1; j < len(fingerprints); j++ {
			if fingerprints[i].Overlap(fingerprints[j]) < minShared {
				continue
			}
			pairs = append(pairs, CandidatePair{
				A:      i,
				B:      j,
				Shared: fingerprints[i].Shared(fingerprints[j]),
			})
		}
	}
	return pairs
}
