package resolve

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frame-transformer/internal/geometry"
	"frame-transformer/internal/transform"
)

var zero = geometry.ZeroVector()

func newRobotManager(t *testing.T) (*Manager, *transform.Configuration) {
	t.Helper()

	conf := transform.NewConfiguration()
	require.NoError(t, conf.AddFrames("body", "servo_low", "servo_high", "laser", "camera", "camera_optical"))

	return NewManager(conf), conf
}

func mustStatic(t *testing.T, conf *transform.Configuration, from, to string) transform.Transform {
	t.Helper()

	tr, err := conf.StaticTransform(from, to, zero)
	require.NoError(t, err)

	return tr
}

func mustDynamic(t *testing.T, conf *transform.Configuration, from, to string, producer any) transform.Transform {
	t.Helper()

	tr, err := conf.DynamicTransform(from, to, producer)
	require.NoError(t, err)

	return tr
}

func TestTransformationChain_Simple(t *testing.T) {
	m, conf := newRobotManager(t)

	transforms := []transform.Transform{
		mustStatic(t, conf, "body", "servo_low"),
		mustDynamic(t, conf, "servo_low", "servo_high", "dynamixel"),
		mustStatic(t, conf, "servo_high", "laser"),
		mustStatic(t, conf, "laser", "camera"),
	}

	chain, err := m.TransformationChain("body", "laser", nil)
	require.NoError(t, err)
	assert.Equal(t, "body", chain.From)
	assert.Equal(t, "laser", chain.To)
	assert.Equal(t, transforms[:3], chain.Links)
	assert.Equal(t, []bool{false, false, false}, chain.Inversions)
}

func TestTransformationChain_WithInversions(t *testing.T) {
	m, conf := newRobotManager(t)

	transforms := []transform.Transform{
		mustStatic(t, conf, "body", "servo_low"),
		mustDynamic(t, conf, "servo_high", "servo_low", "dynamixel"),
		mustStatic(t, conf, "servo_high", "laser"),
		mustStatic(t, conf, "laser", "camera"),
	}

	chain, err := m.TransformationChain("body", "laser", nil)
	require.NoError(t, err)
	assert.Equal(t, transforms[:3], chain.Links)
	assert.Equal(t, []bool{false, true, false}, chain.Inversions)

	back, err := m.TransformationChain("camera", "body", nil)
	require.NoError(t, err)
	assert.Equal(t, []transform.Transform{transforms[3], transforms[2], transforms[1], transforms[0]}, back.Links)
	assert.Equal(t, []bool{true, true, false, true}, back.Inversions)
}

func TestTransformationChain_LoopShortestPath(t *testing.T) {
	m, conf := newRobotManager(t)

	transforms := []transform.Transform{
		mustStatic(t, conf, "body", "servo_low"),
		mustDynamic(t, conf, "servo_high", "servo_low", "dynamixel"),
		mustStatic(t, conf, "servo_high", "laser"),
		mustStatic(t, conf, "servo_high", "body"),
		mustStatic(t, conf, "laser", "camera"),
	}

	chain, err := m.TransformationChain("body", "laser", nil)
	require.NoError(t, err)
	assert.Equal(t, []transform.Transform{transforms[3], transforms[2]}, chain.Links)
	assert.Equal(t, []bool{true, false}, chain.Inversions)
}

func TestTransformationChain_LoopDoesNotBlockLongerRoute(t *testing.T) {
	conf := transform.NewConfiguration()

	// a - b - c - a forms a loop, d hangs off c
	ab := mustStatic(t, conf, "a", "b")
	mustStatic(t, conf, "b", "c")
	ca := mustStatic(t, conf, "c", "a")
	cd := mustStatic(t, conf, "c", "d")

	chain, err := NewManager(conf).TransformationChain("a", "d", nil)
	require.NoError(t, err)
	assert.Equal(t, []transform.Transform{ca, cd}, chain.Links)
	assert.Equal(t, []bool{true, false}, chain.Inversions)

	chain, err = NewManager(conf).TransformationChain("b", "a", nil)
	require.NoError(t, err)
	assert.Equal(t, []transform.Transform{ab}, chain.Links)
	assert.Equal(t, []bool{true}, chain.Inversions)
}

func TestTransformationChain_Unreachable(t *testing.T) {
	m, conf := newRobotManager(t)

	mustStatic(t, conf, "body", "servo_low")
	mustStatic(t, conf, "servo_low", "body_other")
	mustStatic(t, conf, "laser", "camera")

	_, err := m.TransformationChain("body", "camera", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, transform.ErrTransformationNotFound)

	var notFound *transform.TransformationNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "body", notFound.From)
	assert.Equal(t, "camera", notFound.To)

	// isolated frame, no links at all
	_, err = m.TransformationChain("camera_optical", "body", nil)
	assert.ErrorIs(t, err, transform.ErrTransformationNotFound)
}

func TestTransformationChain_MaxSeekDepth(t *testing.T) {
	conf := transform.NewConfiguration()
	mustStatic(t, conf, "f0", "f1")
	mustStatic(t, conf, "f1", "f2")
	mustStatic(t, conf, "f2", "f3")

	_, err := NewManager(conf, WithMaxSeekDepth(2)).TransformationChain("f0", "f3", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, transform.ErrTransformationNotFound)
	assert.Contains(t, err.Error(), "max seek depth")

	chain, err := NewManager(conf, WithMaxSeekDepth(3)).TransformationChain("f0", "f3", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, chain.Len())

	m := NewManager(conf, WithMaxSeekDepth(-1))
	assert.Equal(t, DefaultMaxSeekDepth, m.MaxSeekDepth())
}

func TestTransformationChain_Identity(t *testing.T) {
	m, _ := newRobotManager(t)

	chain, err := m.TransformationChain("laser", "laser", nil)
	require.NoError(t, err)
	assert.True(t, chain.IsIdentity())
	assert.Equal(t, "laser", chain.From)
	assert.Equal(t, "laser", chain.To)
	assert.Empty(t, chain.Links)
	assert.Empty(t, chain.Inversions)

	// malformed producers are never looked at for identity queries
	chain, err = m.TransformationChain("laser", "laser", Producers{{From: "", To: "x"}: "p"})
	require.NoError(t, err)
	assert.True(t, chain.IsIdentity())
}

func TestTransformationChain_UnknownFrames(t *testing.T) {
	m, _ := newRobotManager(t)

	_, err := m.TransformationChain("body", "nowhere", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, transform.ErrInvalidConfiguration)

	_, err = m.TransformationChain("nowhere", "nowhere", nil)
	assert.ErrorIs(t, err, transform.ErrInvalidConfiguration)
}

func TestTransformationChain_ProducerOverride(t *testing.T) {
	m, conf := newRobotManager(t)

	body := mustStatic(t, conf, "body", "servo_low")
	mustDynamic(t, conf, "servo_low", "servo_high", "dynamixel")
	laser := mustStatic(t, conf, "servo_high", "laser")

	chain, err := m.TransformationChain("body", "laser", Producers{
		{From: "servo_high", To: "servo_low"}: "replay",
	})
	require.NoError(t, err)
	require.Equal(t, 3, chain.Len())
	assert.Same(t, body, chain.Links[0])
	assert.Same(t, laser, chain.Links[2])

	dt, ok := chain.Links[1].(*transform.DynamicTransform)
	require.True(t, ok)
	assert.Equal(t, "replay", dt.Producer)
	assert.Equal(t, []bool{false, true, false}, chain.Inversions)

	// the configuration is untouched
	tr, err := conf.TransformationFor("servo_low", "servo_high")
	require.NoError(t, err)
	assert.Equal(t, "dynamixel", tr.(*transform.DynamicTransform).Producer)
}

func TestTransformationChain_ProducerAddsLink(t *testing.T) {
	m, conf := newRobotManager(t)
	mustStatic(t, conf, "body", "servo_low")

	_, err := m.TransformationChain("body", "camera", nil)
	require.ErrorIs(t, err, transform.ErrTransformationNotFound)

	chain, err := m.TransformationChain("body", "camera", Producers{
		{From: "servo_low", To: "camera"}: "calibration",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, chain.Len())
	assert.Equal(t, []bool{false, false}, chain.Inversions)
}

func TestTransformationChain_RejectsBadProducers(t *testing.T) {
	m, conf := newRobotManager(t)
	mustStatic(t, conf, "body", "laser")

	tests := []struct {
		name      string
		producers Producers
	}{
		{"empty source", Producers{{From: "", To: "laser"}: "p"}},
		{"empty target", Producers{{From: "body", To: ""}: "p"}},
		{"self loop", Producers{{From: "body", To: "body"}: "p"}},
		{"both directions", Producers{
			{From: "body", To: "laser"}: "p",
			{From: "laser", To: "body"}: "q",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.TransformationChain("body", "laser", tt.producers)
			require.Error(t, err)
			assert.ErrorIs(t, err, transform.ErrArgument)
		})
	}
}

func TestNewManager_Defaults(t *testing.T) {
	m := NewManager(nil)
	require.NotNil(t, m.Conf())
	assert.NotNil(t, m.Checker())
	assert.Equal(t, DefaultMaxSeekDepth, m.MaxSeekDepth())
}

func TestLoadConfiguration(t *testing.T) {
	m := NewManager(nil)
	require.NoError(t, m.LoadConfiguration("../../examples/robot/frames.yaml"))

	assert.Len(t, m.Conf().Frames(), 7)

	chain, err := m.TransformationChain("camera", "laser", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, chain.Len())
	assert.Equal(t, []bool{true, false, false, false}, chain.Inversions)

	statics, dynamics := chain.Partition()
	assert.Len(t, statics, 3)
	assert.Len(t, dynamics, 1)
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	m := NewManager(nil)
	err := m.LoadConfiguration("../../examples/robot/absent.yaml")
	require.Error(t, err)
	assert.Empty(t, m.Conf().Frames())
}

func TestTransformationChain_DisconnectedFromDenseCluster(t *testing.T) {
	conf := transform.NewConfiguration()
	require.NoError(t, conf.AddFrames("island"))

	const n = 7
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mustStatic(t, conf, fmt.Sprintf("f%d", i), fmt.Sprintf("f%d", j))
		}
	}

	m := NewManager(conf)

	_, err := m.TransformationChain("f0", "island", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, transform.ErrTransformationNotFound)
	assert.Contains(t, err.Error(), "frames are not connected")

	_, err = m.TransformationChain("island", "f3", nil)
	assert.ErrorIs(t, err, transform.ErrTransformationNotFound)

	chain, err := m.TransformationChain("f0", "f6", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, chain.Len())
}
