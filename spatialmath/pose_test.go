package spatialmath

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func randomPose(rng *rand.Rand) Pose {
	pt := r3.Vector{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000, Z: rng.Float64()*2000 - 1000}
	return NewPose(pt, QuatToRotationMatrix(randomUnitQuat(rng)))
}

func TestPoseTransform(t *testing.T) {
	p := NewPose(r3.Vector{X: 10, Y: 20, Z: 30}, rz90)
	test.That(t, p.Point(), test.ShouldResemble, r3.Vector{X: 10, Y: 20, Z: 30})
	test.That(t, p.Orientation(), test.ShouldResemble, rz90)
	test.That(t, p.Transform(r3.Vector{}), test.ShouldResemble, p.Point())

	got := p.Transform(r3.Vector{X: 1, Y: 0, Z: 0})
	test.That(t, R3VectorAlmostEqual(got, r3.Vector{X: 10, Y: 21, Z: 30}, 1e-12), test.ShouldBeTrue)

	all := p.TransformAll([]r3.Vector{{}, {X: 1}})
	test.That(t, all, test.ShouldHaveLength, 2)
	test.That(t, R3VectorAlmostEqual(all[1], got, 1e-12), test.ShouldBeTrue)

	zero := NewZeroPose()
	test.That(t, zero.Transform(r3.Vector{X: 3, Y: 4, Z: 5}), test.ShouldResemble, r3.Vector{X: 3, Y: 4, Z: 5})

	shift := NewPoseFromPoint(r3.Vector{X: -5, Y: -2})
	test.That(t, shift.Transform(r3.Vector{X: 5, Y: 2}), test.ShouldResemble, r3.Vector{})
}

func TestComposeOrder(t *testing.T) {
	rotate := NewPose(r3.Vector{}, rz90)
	shift := NewPoseFromPoint(r3.Vector{X: 1})

	// shift first, then rotate
	rotAfterShift := Compose(rotate, shift)
	got := rotAfterShift.Transform(r3.Vector{})
	test.That(t, R3VectorAlmostEqual(got, r3.Vector{Y: 1}, 1e-12), test.ShouldBeTrue)

	// rotate first, then shift
	shiftAfterRot := Compose(shift, rotate)
	got = shiftAfterRot.Transform(r3.Vector{})
	test.That(t, R3VectorAlmostEqual(got, r3.Vector{X: 1}, 1e-12), test.ShouldBeTrue)

	test.That(t, PoseAlmostCoincident(ComposeAll(), NewZeroPose()), test.ShouldBeTrue)
	test.That(t, PoseAlmostCoincident(ComposeAll(rotate, shift), rotAfterShift), test.ShouldBeTrue)
}

func TestPoseInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		p := randomPose(rng)
		inv := PoseInverse(p)
		test.That(t, PoseAlmostEqualEps(Compose(p, inv), NewZeroPose(), 1e-9), test.ShouldBeTrue)
		test.That(t, PoseAlmostEqualEps(Compose(inv, p), NewZeroPose(), 1e-9), test.ShouldBeTrue)
		test.That(t, PoseAlmostEqualEps(PoseInverse(inv), p, 1e-9), test.ShouldBeTrue)

		pt := r3.Vector{X: rng.Float64() * 100, Y: rng.Float64() * 100, Z: rng.Float64() * 100}
		test.That(t, R3VectorAlmostEqual(inv.Transform(p.Transform(pt)), pt, 1e-9), test.ShouldBeTrue)
	}
}

func TestDistanceInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		pose := randomPose(rng)
		a := r3.Vector{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000, Z: rng.Float64()*2000 - 1000}
		b := r3.Vector{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000, Z: rng.Float64()*2000 - 1000}
		before := a.Distance(b)
		after := pose.Transform(a).Distance(pose.Transform(b))
		test.That(t, after, test.ShouldAlmostEqual, before, 1e-9)
		test.That(t, pose.Orientation().Det(), test.ShouldAlmostEqual, 1, 1e-9)
	}
}

func TestComposeAssociative(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, b, c := randomPose(rng), randomPose(rng), randomPose(rng)
	left := Compose(Compose(a, b), c)
	right := Compose(a, Compose(b, c))
	test.That(t, PoseAlmostEqualEps(left, right, 1e-6), test.ShouldBeTrue)

	pt := r3.Vector{X: 1, Y: 2, Z: 3}
	test.That(t, R3VectorAlmostEqual(left.Transform(pt), a.Transform(b.Transform(c.Transform(pt))), 1e-6), test.ShouldBeTrue)
}
