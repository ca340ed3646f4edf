package registration

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/beaconmap/spatialmath"
)

// Matcher names a correspondence matching strategy.
type Matcher string

// Available matchers.
const (
	MatcherGreedy    Matcher = "greedy"
	MatcherHungarian Matcher = "hungarian"
)

// Valid reports whether m is a known matcher. The empty matcher means greedy.
func (m Matcher) Valid() bool {
	switch m {
	case "", MatcherGreedy, MatcherHungarian:
		return true
	default:
		return false
	}
}

// AlignOptions controls AlignPair.
type AlignOptions struct {
	// MinOverlap is the minimum number of matched beacons. Defaults to DefaultMinOverlap and must
	// not be below MinAlignableOverlap.
	MinOverlap int
	Matcher    Matcher
	// MaxResidual rejects alignments whose RMSE exceeds it, on top of the MinOverlap rule. Zero
	// disables the check.
	MaxResidual float64
}

// Alignment is a solved transform between two scanners. Pose maps points of the second scanner
// into the frame of the first.
type Alignment struct {
	Pose            spatialmath.Pose
	Correspondences []Correspondence
	Residual        ResidualStats
}

// AlignPair matches the beacons of a and b and solves the transform from b's frame into a's frame.
// It returns false without an error when the scanners do not share enough beacons or the fit is
// too poor; that is the expected outcome for most pairs.
func AlignPair(a, b []r3.Vector, opts AlignOptions) (Alignment, bool, error) {
	minOverlap := opts.MinOverlap
	if minOverlap <= 0 {
		minOverlap = DefaultMinOverlap
	}
	if minOverlap < MinAlignableOverlap {
		return Alignment{}, false, errors.Errorf("min overlap %d is below %d", minOverlap, MinAlignableOverlap)
	}

	var corrs []Correspondence
	switch opts.Matcher {
	case "", MatcherGreedy:
		corrs = MatchGreedy(a, b, minOverlap)
	case MatcherHungarian:
		corrs = MatchOptimal(a, b, minOverlap)
	default:
		return Alignment{}, false, errors.Errorf("unknown matcher %q", opts.Matcher)
	}
	if len(corrs) < minOverlap {
		return Alignment{Correspondences: corrs}, false, nil
	}

	pointsA, pointsB := Unzip(corrs)
	pose, err := AlignPoints(pointsA, pointsB)
	if err != nil {
		return Alignment{}, false, err
	}
	residual, err := NewResidualStats(Residuals(pose, pointsA, pointsB))
	if err != nil {
		return Alignment{}, false, err
	}
	alignment := Alignment{Pose: pose, Correspondences: corrs, Residual: residual}
	if opts.MaxResidual > 0 && residual.RMSE > opts.MaxResidual {
		return alignment, false, nil
	}
	return alignment, true, nil
}
