package referenceframe

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"go.viam.com/beaconmap/spatialmath"
)

func randomPose(rng *rand.Rand) spatialmath.Pose {
	q := quat.Number{Real: rng.NormFloat64(), Imag: rng.NormFloat64(), Jmag: rng.NormFloat64(), Kmag: rng.NormFloat64()}
	pt := r3.Vector{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000, Z: rng.Float64()*2000 - 1000}
	return spatialmath.NewPose(pt, spatialmath.QuatToRotationMatrix(q))
}

// relative returns the pose mapping frame v into frame u given both frames' world poses.
func relative(worldU, worldV spatialmath.Pose) spatialmath.Pose {
	return spatialmath.Compose(spatialmath.PoseInverse(worldU), worldV)
}

func TestAddTransform(t *testing.T) {
	tg := NewTransformGraph()
	test.That(t, tg.Nodes(), test.ShouldBeEmpty)

	err := tg.AddTransform(3, 3, spatialmath.NewZeroPose())
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "to itself")

	shift := spatialmath.NewPoseFromPoint(r3.Vector{X: 68, Y: -1246, Z: -43})
	test.That(t, tg.AddTransform(0, 1, shift), test.ShouldBeNil)
	tg.AddNode(5)
	tg.AddNode(5)

	test.That(t, tg.Nodes(), test.ShouldResemble, []int{0, 1, 5})
	test.That(t, tg.HasNode(1), test.ShouldBeTrue)
	test.That(t, tg.HasNode(2), test.ShouldBeFalse)
	test.That(t, tg.EdgeCount(), test.ShouldEqual, 2)
	test.That(t, tg.Neighbors(0), test.ShouldResemble, []int{1})
	test.That(t, tg.Neighbors(5), test.ShouldBeEmpty)

	forward, ok := tg.Transform(0, 1)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, forward.Transform(r3.Vector{}), test.ShouldResemble, r3.Vector{X: 68, Y: -1246, Z: -43})

	backward, ok := tg.Transform(1, 0)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, spatialmath.PoseAlmostCoincident(backward, spatialmath.PoseInverse(shift)), test.ShouldBeTrue)

	_, ok = tg.Transform(0, 5)
	test.That(t, ok, test.ShouldBeFalse)
}

func TestWorldTransforms(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	truth := map[int]spatialmath.Pose{0: spatialmath.NewZeroPose()}
	for i := 1; i < 5; i++ {
		truth[i] = randomPose(rng)
	}

	tg := NewTransformGraph()
	// same shape as the five scanner example, with 2-4 discovered from the 2 side
	for _, e := range [][2]int{{0, 1}, {1, 3}, {1, 4}, {2, 4}} {
		test.That(t, tg.AddTransform(e[0], e[1], relative(truth[e[0]], truth[e[1]])), test.ShouldBeNil)
	}
	tg.AddNode(7)

	world, err := tg.WorldTransforms(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, world, test.ShouldHaveLength, 5)
	for id, want := range truth {
		got, ok := world[id]
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, spatialmath.PoseAlmostEqualEps(got, want, 1e-6), test.ShouldBeTrue)
	}
	_, ok := world[7]
	test.That(t, ok, test.ShouldBeFalse)

	// from another root every pose is expressed in that frame
	world, err = tg.WorldTransforms(4)
	test.That(t, err, test.ShouldBeNil)
	for id, want := range truth {
		test.That(t, spatialmath.PoseAlmostEqualEps(world[id], relative(truth[4], want), 1e-6), test.ShouldBeTrue)
	}

	_, err = tg.WorldTransforms(9)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "not in the transform graph")
}

func TestWorldTransformsWithCycle(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	truth := []spatialmath.Pose{spatialmath.NewZeroPose(), randomPose(rng), randomPose(rng), randomPose(rng)}

	tg := NewTransformGraph()
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}} {
		test.That(t, tg.AddTransform(e[0], e[1], relative(truth[e[0]], truth[e[1]])), test.ShouldBeNil)
	}
	world, err := tg.WorldTransforms(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, world, test.ShouldHaveLength, 4)
	for id, want := range truth {
		test.That(t, spatialmath.PoseAlmostEqualEps(world[id], want, 1e-6), test.ShouldBeTrue)
	}
}

func TestWorldTransformsSingleNode(t *testing.T) {
	tg := NewTransformGraph()
	tg.AddNode(0)
	world, err := tg.WorldTransforms(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, world, test.ShouldHaveLength, 1)
	test.That(t, spatialmath.PoseAlmostCoincident(world[0], spatialmath.NewZeroPose()), test.ShouldBeTrue)
}
