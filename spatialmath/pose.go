package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// defaultEpsilon is the tolerance used by the PoseAlmost* helpers when none is given.
const defaultEpsilon = 1e-6

// Pose is a rigid transform: a proper rotation followed by a translation.
// Transforming a point p yields R*p + t. The zero value is not a valid pose; use NewZeroPose.
type Pose struct {
	orientation RotationMatrix
	point       r3.Vector
}

// NewPose returns a pose that rotates by orientation and then translates by point.
func NewPose(point r3.Vector, orientation RotationMatrix) Pose {
	return Pose{orientation: orientation, point: point}
}

// NewZeroPose returns the identity pose.
func NewZeroPose() Pose {
	return Pose{orientation: IdentityRotation()}
}

// NewPoseFromPoint returns a pure translation.
func NewPoseFromPoint(point r3.Vector) Pose {
	return Pose{orientation: IdentityRotation(), point: point}
}

// Point returns the translation of the pose. It is also where the pose sends the origin.
func (p Pose) Point() r3.Vector {
	return p.point
}

// Orientation returns the rotation of the pose.
func (p Pose) Orientation() RotationMatrix {
	return p.orientation
}

// Transform applies the pose to v.
func (p Pose) Transform(v r3.Vector) r3.Vector {
	return p.orientation.Mul(v).Add(p.point)
}

// TransformAll applies the pose to every vector in vs and returns the results in order.
func (p Pose) TransformAll(vs []r3.Vector) []r3.Vector {
	out := make([]r3.Vector, 0, len(vs))
	for _, v := range vs {
		out = append(out, p.Transform(v))
	}
	return out
}

func (p Pose) String() string {
	return fmt.Sprintf("{point: %v, orientation: %v}", p.point, p.orientation)
}

// Compose returns a∘b: the pose that applies b first and then a.
func Compose(a, b Pose) Pose {
	return Pose{
		orientation: a.orientation.MulRotation(b.orientation),
		point:       a.orientation.Mul(b.point).Add(a.point),
	}
}

// ComposeAll composes poses left to right, so ComposeAll(a, b, c) == Compose(Compose(a, b), c).
// An empty list is the identity.
func ComposeAll(poses ...Pose) Pose {
	out := NewZeroPose()
	for _, p := range poses {
		out = Compose(out, p)
	}
	return out
}

// PoseInverse returns the pose that undoes p: rotation R^T and translation -R^T*t.
func PoseInverse(p Pose) Pose {
	inv := p.orientation.Transpose()
	return Pose{orientation: inv, point: inv.Mul(p.point).Mul(-1)}
}

// PoseAlmostEqualEps returns whether two poses have translations within eps of each other and
// approximately the same orientation.
func PoseAlmostEqualEps(a, b Pose, eps float64) bool {
	return R3VectorAlmostEqual(a.point, b.point, eps) && OrientationAlmostEqual(a.orientation, b.orientation)
}

// PoseAlmostCoincident returns whether two poses are equal within the default tolerance.
func PoseAlmostCoincident(a, b Pose) bool {
	return PoseAlmostEqualEps(a, b, defaultEpsilon)
}
