package registration

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/montanaflynn/stats"

	"go.viam.com/beaconmap/spatialmath"
)

// ResidualStats summarizes how far transformed points land from their correspondences.
type ResidualStats struct {
	Mean float64
	Max  float64
	RMSE float64
}

func (rs ResidualStats) String() string {
	return fmt.Sprintf("mean=%.4f max=%.4f rmse=%.4f", rs.Mean, rs.Max, rs.RMSE)
}

// Residuals returns |a[i] - pose.Transform(b[i])| for each correspondence.
func Residuals(pose spatialmath.Pose, a, b []r3.Vector) []float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("cannot compare %d points against %d points", len(a), len(b)))
	}
	residuals := make([]float64, 0, len(a))
	for i := range a {
		residuals = append(residuals, a[i].Distance(pose.Transform(b[i])))
	}
	return residuals
}

// NewResidualStats computes summary statistics over residuals. Empty input gives zero stats.
func NewResidualStats(residuals []float64) (ResidualStats, error) {
	if len(residuals) == 0 {
		return ResidualStats{}, nil
	}
	data := stats.Float64Data(residuals)
	mean, err := data.Mean()
	if err != nil {
		return ResidualStats{}, err
	}
	maxResidual, err := data.Max()
	if err != nil {
		return ResidualStats{}, err
	}
	squares := make(stats.Float64Data, 0, len(residuals))
	for _, r := range residuals {
		squares = append(squares, r*r)
	}
	meanSquare, err := squares.Mean()
	if err != nil {
		return ResidualStats{}, err
	}
	return ResidualStats{Mean: mean, Max: maxResidual, RMSE: math.Sqrt(meanSquare)}, nil
}
