package registration

import (
	"github.com/golang/geo/r3"
	"github.com/samber/lo"

	"go.viam.com/beaconmap/pointcloud"
	"go.viam.com/beaconmap/utils"
)

// DefaultMinOverlap is the number of beacons two scanners must share to be aligned.
const DefaultMinOverlap = 12

// MinAlignableOverlap is the smallest overlap that pins down a rigid transform. With an overlap of
// one, every profile matches every other through the zero self distance alone.
const MinAlignableOverlap = 3

// Correspondence pairs a beacon of scanner A with the beacon of scanner B believed to be the same
// physical beacon.
type Correspondence struct {
	IndexA, IndexB int
	A, B           r3.Vector
}

// Unzip splits correspondences into the two ordered point lists expected by AlignPoints.
func Unzip(corrs []Correspondence) ([]r3.Vector, []r3.Vector) {
	a := lo.Map(corrs, func(c Correspondence, _ int) r3.Vector { return c.A })
	b := lo.Map(corrs, func(c Correspondence, _ int) r3.Vector { return c.B })
	return a, b
}

// profilesAccepted reports whether two beacons with the given number of shared profile distances
// look like the same beacon.
func profilesAccepted(shared, lenA, lenB, minOverlap int) bool {
	return shared > utils.MinInt(lenA, lenB)/2 || shared >= minOverlap
}

// MatchGreedy matches beacons of a to beacons of b by comparing their sorted distance profiles.
// Each beacon of a takes the first unclaimed beacon of b whose profile shares more than half of the
// shorter profile, or at least minOverlap distances.
func MatchGreedy(a, b []r3.Vector, minOverlap int) []Correspondence {
	profilesA := pointcloud.DistanceProfiles(a)
	profilesB := pointcloud.DistanceProfiles(b)

	var corrs []Correspondence
	claimed := make([]bool, len(b))
	for ia, pa := range profilesA {
		for ib, pb := range profilesB {
			if claimed[ib] {
				continue
			}
			if profilesAccepted(CountIntersect(pa, pb), len(pa), len(pb), minOverlap) {
				claimed[ib] = true
				corrs = append(corrs, Correspondence{IndexA: ia, IndexB: ib, A: a[ia], B: b[ib]})
				break
			}
		}
	}
	return corrs
}

// MatchOptimal scores beacon pairs the same way as MatchGreedy but picks the assignment that
// maximizes the total number of shared profile distances. Pairs MatchGreedy would never accept are
// never assigned. Results are ordered by IndexA.
func MatchOptimal(a, b []r3.Vector, minOverlap int) []Correspondence {
	profilesA := pointcloud.DistanceProfiles(a)
	profilesB := pointcloud.DistanceProfiles(b)

	shared := make([][]int, len(a))
	rowUsed := make([]bool, len(a))
	colUsed := make([]bool, len(b))
	for ia, pa := range profilesA {
		shared[ia] = make([]int, len(b))
		for ib, pb := range profilesB {
			n := CountIntersect(pa, pb)
			if !profilesAccepted(n, len(pa), len(pb), minOverlap) {
				n = -1
			} else {
				rowUsed[ia] = true
				colUsed[ib] = true
			}
			shared[ia][ib] = n
		}
	}

	// beacons without any acceptable partner stay out of the assignment problem
	rows := lo.Filter(lo.Range(len(a)), func(i, _ int) bool { return rowUsed[i] })
	cols := lo.Filter(lo.Range(len(b)), func(i, _ int) bool { return colUsed[i] })
	if len(rows) == 0 || len(cols) == 0 {
		return nil
	}
	maxLen := utils.MaxInt(len(a), len(b))
	cost := make([][]float64, len(rows))
	for i, ia := range rows {
		cost[i] = make([]float64, len(cols))
		for j, ib := range cols {
			if n := shared[ia][ib]; n >= 0 {
				cost[i][j] = float64(maxLen - n)
			} else {
				cost[i][j] = hungarianInf
			}
		}
	}

	var corrs []Correspondence
	for i, j := range hungarianAssign(cost) {
		if j < 0 {
			continue
		}
		ia, ib := rows[i], cols[j]
		corrs = append(corrs, Correspondence{IndexA: ia, IndexB: ib, A: a[ia], B: b[ib]})
	}
	return corrs
}
