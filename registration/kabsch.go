package registration

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"go.viam.com/beaconmap/pointcloud"
	"go.viam.com/beaconmap/spatialmath"
)

// ErrNoCorrespondences is returned when asked to align empty point sets.
var ErrNoCorrespondences = errors.New("cannot align point sets without correspondences")

// AlignPoints returns the rigid transform that best maps the points of b onto the points of a in
// the least squares sense, so that a[i] ≈ pose.Transform(b[i]). a[i] must correspond to b[i]; it
// panics if the slices differ in length.
func AlignPoints(a, b []r3.Vector) (spatialmath.Pose, error) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("cannot align %d points against %d points", len(a), len(b)))
	}
	n := len(a)
	if n == 0 {
		return spatialmath.Pose{}, ErrNoCorrespondences
	}

	centroidA := pointcloud.Centroid(a)
	centroidB := pointcloud.Centroid(b)
	centeredA := centeredColumns(a, centroidA)
	centeredB := centeredColumns(b, centroidB)

	// cross covariance H = A·Bᵀ / n
	var h mat.Dense
	h.Mul(centeredA, centeredB.T())
	h.Scale(1/float64(n), &h)

	var svd mat.SVD
	if ok := svd.Factorize(&h, mat.SVDFull); !ok {
		return spatialmath.Pose{}, errors.New("failed to factorize cross covariance matrix")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// flip the last axis when U·Vᵀ would be a reflection; det(Vᵀ) == det(V)
	d := 1.0
	if mat.Det(&u)*mat.Det(&v) < 0 {
		d = -1
	}
	var r mat.Dense
	r.Product(&u, mat.NewDiagDense(3, []float64{1, 1, d}), v.T())

	rotation, err := spatialmath.NewRotationMatrixFromDense(&r)
	if err != nil {
		return spatialmath.Pose{}, err
	}
	translation := centroidA.Sub(rotation.Mul(centroidB))
	return spatialmath.NewPose(translation, *rotation), nil
}

// centeredColumns returns the 3xN matrix whose columns are points minus their centroid.
func centeredColumns(points []r3.Vector, centroid r3.Vector) *mat.Dense {
	m := mat.NewDense(3, len(points), nil)
	for i, p := range points {
		c := p.Sub(centroid)
		m.Set(0, i, c.X)
		m.Set(1, i, c.Y)
		m.Set(2, i, c.Z)
	}
	return m
}
