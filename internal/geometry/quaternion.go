package geometry

import (
	"errors"
	"fmt"
	"math"
)

// Quaternion is a rotation stored as (w, x, y, z).
type Quaternion struct {
	W, X, Y, Z float64
}

// IdentityQuaternion returns the rotation that leaves every vector unchanged.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromSlice builds a Quaternion from [w, x, y, z].
func QuaternionFromSlice(q []float64) (Quaternion, error) {
	if len(q) != 4 {
		return Quaternion{}, fmt.Errorf("rotation needs 4 components (w, x, y, z), got %d", len(q))
	}

	return Quaternion{W: q[0], X: q[1], Y: q[2], Z: q[3]}, nil
}

// QuaternionFromAxisAngle returns the rotation of angle radians around axis.
// The axis does not need to be normalized but must not be null.
func QuaternionFromAxisAngle(axis Vector3, angle float64) (Quaternion, error) {
	n := axis.Norm()
	if n == 0 {
		return Quaternion{}, errors.New("rotation axis must not be null")
	}

	s := math.Sin(angle/2) / n

	return Quaternion{
		W: math.Cos(angle / 2),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}, nil
}

// Slice returns the components as [w, x, y, z].
func (q Quaternion) Slice() []float64 {
	return []float64{q.W, q.X, q.Y, q.Z}
}

// ApproxEqual reports whether q and other describe the same rotation within
// tol. q and -q are the same rotation.
func (q Quaternion) ApproxEqual(other Quaternion, tol float64) bool {
	same := math.Abs(q.W-other.W) <= tol &&
		math.Abs(q.X-other.X) <= tol &&
		math.Abs(q.Y-other.Y) <= tol &&
		math.Abs(q.Z-other.Z) <= tol
	if same {
		return true
	}

	return math.Abs(q.W+other.W) <= tol &&
		math.Abs(q.X+other.X) <= tol &&
		math.Abs(q.Y+other.Y) <= tol &&
		math.Abs(q.Z+other.Z) <= tol
}

func (q Quaternion) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", q.W, q.X, q.Y, q.Z)
}
