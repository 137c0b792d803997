package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorFromSlice(t *testing.T) {
	v, err := VectorFromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, Vector3{X: 1, Y: 2, Z: 3}, v)
	assert.Equal(t, []float64{1, 2, 3}, v.Slice())

	_, err = VectorFromSlice([]float64{1, 2})
	require.Error(t, err)
}

func TestQuaternionFromSlice(t *testing.T) {
	q, err := QuaternionFromSlice([]float64{1, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, IdentityQuaternion(), q)

	_, err = QuaternionFromSlice([]float64{1, 0, 0})
	require.Error(t, err)
}

func TestQuaternionFromAxisAngle(t *testing.T) {
	q, err := QuaternionFromAxisAngle(Vector3{Z: 2}, math.Pi)
	require.NoError(t, err)
	assert.True(t, q.ApproxEqual(Quaternion{Z: 1}, 1e-9), "got %s", q)

	q, err = QuaternionFromAxisAngle(Vector3{X: 1}, 0)
	require.NoError(t, err)
	assert.True(t, q.ApproxEqual(IdentityQuaternion(), 1e-9))

	_, err = QuaternionFromAxisAngle(ZeroVector(), 1)
	require.Error(t, err)
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, Vector3{X: 1}.ApproxEqual(Vector3{X: 1.0001}, 0.001))
	assert.False(t, Vector3{X: 1}.ApproxEqual(Vector3{X: 1.1}, 0.001))

	// q and -q are the same rotation
	q := Quaternion{W: 0.5, X: 0.5, Y: 0.5, Z: 0.5}
	neg := Quaternion{W: -0.5, X: -0.5, Y: -0.5, Z: -0.5}
	assert.True(t, q.ApproxEqual(neg, 1e-9))
	assert.False(t, q.ApproxEqual(IdentityQuaternion(), 1e-9))
}
