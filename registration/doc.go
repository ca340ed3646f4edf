// Package registration finds overlapping scanners and solves the rigid transform between them.
//
// The pipeline for one pair of scanners is: compare distance fingerprints to decide whether the pair
// is worth trying, match individual beacons by their distance profiles, then fit a rotation and
// translation to the matched beacons with the Kabsch algorithm.
package registration
