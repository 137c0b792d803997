package geometry

import (
	"fmt"
	"math"
)

// Vector3 is a translation expressed in the parent frame.
type Vector3 struct {
	X, Y, Z float64
}

// ZeroVector returns the null translation.
func ZeroVector() Vector3 {
	return Vector3{}
}

// VectorFromSlice builds a Vector3 from exactly three components.
func VectorFromSlice(v []float64) (Vector3, error) {
	if len(v) != 3 {
		return Vector3{}, fmt.Errorf("translation needs 3 components, got %d", len(v))
	}

	return Vector3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// Slice returns the components as [x, y, z].
func (v Vector3) Slice() []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// Norm returns the euclidean length of v.
func (v Vector3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// ApproxEqual reports whether every component of v is within tol of other.
func (v Vector3) ApproxEqual(other Vector3, tol float64) bool {
	return math.Abs(v.X-other.X) <= tol &&
		math.Abs(v.Y-other.Y) <= tol &&
		math.Abs(v.Z-other.Z) <= tol
}

func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
