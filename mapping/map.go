// Package mapping stitches the beacons seen by many scanners into one map in the reference
// scanner's frame.
package mapping

import (
	"github.com/golang/geo/r3"

	"go.viam.com/beaconmap/pointcloud"
	"go.viam.com/beaconmap/spatialmath"
	"go.viam.com/beaconmap/utils"
)

// Map is the result of Build. Positions are in the reference scanner's frame and deduplicated by
// their rounded integer coordinates.
type Map struct {
	Scanners pointcloud.KeySet
	Beacons  pointcloud.KeySet
	// Transforms maps each placed scanner to the pose taking its points into the reference frame.
	Transforms map[int]spatialmath.Pose
}

func newMap(scanners [][]r3.Vector, world map[int]spatialmath.Pose) *Map {
	m := &Map{
		Scanners:   pointcloud.NewKeySet(),
		Beacons:    pointcloud.NewKeySet(),
		Transforms: world,
	}
	for id, pose := range world {
		m.Scanners.Add(pose.Transform(r3.Vector{}))
		for _, beacon := range scanners[id] {
			m.Beacons.Add(pose.Transform(beacon))
		}
	}
	return m
}

// BeaconCount returns the number of distinct beacons.
func (m *Map) BeaconCount() int {
	return m.Beacons.Len()
}

// ScannerPosition returns where a scanner sits in the reference frame, if it was placed.
func (m *Map) ScannerPosition(id int) (pointcloud.Key, bool) {
	pose, ok := m.Transforms[id]
	if !ok {
		return pointcloud.Key{}, false
	}
	return pointcloud.NewKey(pose.Point()), true
}

// MaxManhattanDistance returns the largest Manhattan distance between two scanner positions, or 0
// with fewer than two scanners.
func (m *Map) MaxManhattanDistance() int {
	positions := m.Scanners.Sorted()
	best := 0
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			best = utils.MaxInt(best, pointcloud.ManhattanDistance(positions[i], positions[j]))
		}
	}
	return best
}
