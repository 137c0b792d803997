package conffile

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const robotYAML = "../../examples/robot/frames.yaml"
const robotTOML = "../../examples/robot/frames.toml"

func TestParse(t *testing.T) {
	data := `
version: "1"
frames: [body, laser]
static:
  - from: body
    to: laser
    translation: [0, 0, 0.3]
    rotation: [1, 0, 0, 0]
dynamic:
  - from: laser
    to: mirror
    producer: galvo
example:
  - from: laser
    to: mirror
    rotation: {axis: [0, 0, 2], angle: 3.141592653589793}
`

	f, err := Parse([]byte(data), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, []string{"body", "laser"}, f.Frames)

	require.Len(t, f.Static, 1)
	assert.Equal(t, "body", f.Static[0].From)
	assert.Equal(t, "laser", f.Static[0].To)
	assert.Equal(t, []float64{0, 0, 0.3}, f.Static[0].Translation)
	assert.Equal(t, Rotation{1, 0, 0, 0}, f.Static[0].Rotation)

	require.Len(t, f.Dynamic, 1)
	assert.Equal(t, DynamicEntry{From: "laser", To: "mirror", Producer: "galvo"}, f.Dynamic[0])

	require.Len(t, f.Example, 1)
	assert.Empty(t, f.Example[0].Translation)
	require.Len(t, f.Example[0].Rotation, 4)
	assert.InDelta(t, 0, f.Example[0].Rotation[0], 1e-9)
	assert.InDelta(t, 0, f.Example[0].Rotation[1], 1e-9)
	assert.InDelta(t, 0, f.Example[0].Rotation[2], 1e-9)
	assert.InDelta(t, 1, f.Example[0].Rotation[3], 1e-9)
}

func TestParseDefaultsVersion(t *testing.T) {
	f, err := Parse([]byte("frames: [a]\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, CurrentVersion, f.Version)
}

func TestParseRotationErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"scalar", "static:\n  - {from: a, to: b, rotation: 1}\n"},
		{"null axis", "static:\n  - {from: a, to: b, rotation: {axis: [0, 0, 0], angle: 1}}\n"},
		{"short axis", "static:\n  - {from: a, to: b, rotation: {axis: [0, 1], angle: 1}}\n"},
		{"missing angle", "static:\n  - {from: a, to: b, rotation: {axis: [0, 0, 1]}}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), FormatYAML)
			assert.Error(t, err)
		})
	}
}

func TestParseTOML(t *testing.T) {
	data := `
frames = ["body", "laser"]

[[static]]
from = "body"
to = "laser"
translation = [0.0, 0.0, 0.3]
rotation = { axis = [0, 0, 1], angle = 3.141592653589793 }

[[example]]
from = "body"
to = "laser"
rotation = [1, 0, 0, 0]
`

	f, err := Parse([]byte(data), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, f.Version)
	require.Len(t, f.Static, 1)
	assert.Equal(t, []float64{0, 0, 0.3}, f.Static[0].Translation)
	require.Len(t, f.Static[0].Rotation, 4)
	assert.InDelta(t, 0, f.Static[0].Rotation[0], 1e-9)
	assert.InDelta(t, 1, f.Static[0].Rotation[3], 1e-9)

	require.Len(t, f.Example, 1)
	assert.Equal(t, Rotation{1, 0, 0, 0}, f.Example[0].Rotation)
}

func TestParseTOMLRotationErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"string", "[[static]]\nfrom = \"a\"\nto = \"b\"\nrotation = \"identity\"\n"},
		{"missing axis", "[[static]]\nfrom = \"a\"\nto = \"b\"\nrotation = { angle = 1.0 }\n"},
		{"missing angle", "[[static]]\nfrom = \"a\"\nto = \"b\"\nrotation = { axis = [0.0, 0.0, 1.0] }\n"},
		{"text angle", "[[static]]\nfrom = \"a\"\nto = \"b\"\nrotation = { axis = [1.0, 0.0, 0.0], angle = \"x\" }\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml), FormatTOML)
			assert.Error(t, err)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatTOML, FormatFromPath("robot/frames.toml"))
	assert.Equal(t, FormatTOML, FormatFromPath("FRAMES.TOML"))
	assert.Equal(t, FormatYAML, FormatFromPath("frames.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("frames.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("frames"))
	assert.Equal(t, "toml", FormatTOML.String())
	assert.Equal(t, "yaml", FormatYAML.String())
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFileExamplesAgree(t *testing.T) {
	fromYAML, err := LoadFile(robotYAML)
	require.NoError(t, err)

	fromTOML, err := LoadFile(robotTOML)
	require.NoError(t, err)

	assert.Equal(t, fromYAML.Frames, fromTOML.Frames)
	assert.Equal(t, fromYAML.Dynamic, fromTOML.Dynamic)
	require.Len(t, fromTOML.Static, len(fromYAML.Static))

	for i := range fromYAML.Static {
		assert.Equal(t, fromYAML.Static[i].From, fromTOML.Static[i].From)
		assert.Equal(t, fromYAML.Static[i].To, fromTOML.Static[i].To)
		assert.Equal(t, fromYAML.Static[i].Translation, fromTOML.Static[i].Translation)
		assert.Equal(t, fromYAML.Static[i].Rotation, fromTOML.Static[i].Rotation)
	}

	assert.True(t, Validate(fromYAML).IsValid())
	assert.True(t, Validate(fromTOML).IsValid())
}

func TestWriteFileRoundTrip(t *testing.T) {
	src, err := LoadFile(robotYAML)
	require.NoError(t, err)

	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteFile(src, path))

			got, err := LoadFile(path)
			require.NoError(t, err)

			assert.Equal(t, src.Version, got.Version)
			assert.Equal(t, src.Frames, got.Frames)
			assert.Equal(t, src.Dynamic, got.Dynamic)
			require.Len(t, got.Static, len(src.Static))

			for i := range src.Static {
				assert.Equal(t, src.Static[i].Translation, got.Static[i].Translation)
				assert.Equal(t, src.Static[i].Rotation, got.Static[i].Rotation)
			}

			// the axis/angle entry is written back as a quaternion
			assert.InDelta(t, math.Sqrt2/2, got.Static[1].Rotation[0], 1e-12)
		})
	}
}
