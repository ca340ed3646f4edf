package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// 90 degree rotation about z.
var rz90 = RotationMatrix{mat: [9]float64{0, -1, 0, 1, 0, 0, 0, 0, 1}}

func randomUnitQuat(rng *rand.Rand) quat.Number {
	q := quat.Number{Real: rng.NormFloat64(), Imag: rng.NormFloat64(), Jmag: rng.NormFloat64(), Kmag: rng.NormFloat64()}
	return quat.Scale(1/quat.Abs(q), q)
}

func TestNewRotationMatrix(t *testing.T) {
	rm, err := NewRotationMatrix([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, *rm, test.ShouldResemble, IdentityRotation())

	_, err = NewRotationMatrix([]float64{1, 0, 0})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "need exactly 9")

	dense := rz90.Dense()
	fromDense, err := NewRotationMatrixFromDense(dense)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, *fromDense, test.ShouldResemble, rz90)

	_, err = NewRotationMatrixFromDense(dense.Slice(0, 2, 0, 3))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRotationMatrixMul(t *testing.T) {
	v := rz90.Mul(r3.Vector{X: 1, Y: 0, Z: 0})
	test.That(t, R3VectorAlmostEqual(v, r3.Vector{X: 0, Y: 1, Z: 0}, 1e-12), test.ShouldBeTrue)

	rz180 := rz90.MulRotation(rz90)
	v = rz180.Mul(r3.Vector{X: 1, Y: 2, Z: 3})
	test.That(t, R3VectorAlmostEqual(v, r3.Vector{X: -1, Y: -2, Z: 3}, 1e-12), test.ShouldBeTrue)

	back := rz90.Transpose().Mul(rz90.Mul(r3.Vector{X: 4, Y: -5, Z: 6}))
	test.That(t, R3VectorAlmostEqual(back, r3.Vector{X: 4, Y: -5, Z: 6}, 1e-12), test.ShouldBeTrue)
	test.That(t, rz90.Det(), test.ShouldAlmostEqual, 1)
	test.That(t, rz90.IsProper(1e-9), test.ShouldBeTrue)

	reflection := RotationMatrix{mat: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, -1}}
	test.That(t, reflection.Det(), test.ShouldAlmostEqual, -1)
	test.That(t, reflection.IsProper(1e-9), test.ShouldBeFalse)

	skew := RotationMatrix{mat: [9]float64{1, 1, 0, 0, 1, 0, 0, 0, 1}}
	test.That(t, skew.Det(), test.ShouldAlmostEqual, 1)
	test.That(t, skew.IsProper(1e-9), test.ShouldBeFalse)
}

func TestQuaternionRoundTrip(t *testing.T) {
	q := rz90.Quaternion()
	test.That(t, q.Real, test.ShouldAlmostEqual, math.Cos(math.Pi/4))
	test.That(t, q.Kmag, test.ShouldAlmostEqual, math.Sin(math.Pi/4))

	rng := rand.New(rand.NewSource(19))
	for i := 0; i < 100; i++ {
		q := randomUnitQuat(rng)
		rm := QuatToRotationMatrix(q)
		test.That(t, rm.IsProper(1e-9), test.ShouldBeTrue)
		test.That(t, QuaternionAlmostEqual(rm.Quaternion(), q, 1e-9), test.ShouldBeTrue)
		test.That(t, OrientationAlmostEqual(QuatToRotationMatrix(rm.Quaternion()), rm), test.ShouldBeTrue)
	}

	test.That(t, QuatToRotationMatrix(quat.Number{}), test.ShouldResemble, IdentityRotation())
}

func TestQuaternionAlmostEqualDoubleCover(t *testing.T) {
	q := quat.Number{Real: 0.5, Imag: 0.5, Jmag: 0.5, Kmag: 0.5}
	test.That(t, QuaternionAlmostEqual(q, quat.Scale(-1, q), 1e-9), test.ShouldBeTrue)
	test.That(t, QuaternionAlmostEqual(q, quat.Number{Real: 1}, 1e-9), test.ShouldBeFalse)
}
