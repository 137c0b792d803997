package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("duplicate_frame", "frame declared twice", "frames[3]", "body")
	d.AddInfo("note", "just saying", "", "")
	assert.True(t, d.IsValid())

	d.AddError("invalid_frame_name", "bad frame name", "static[0]", "camera-optical", "camera_optical")
	require.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		"static[0] camera-optical: [invalid_frame_name] bad frame name (did you mean camera_optical?)",
		err.Error())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
	assert.Equal(t, SeverityInfo, all[2].Severity)
}

func TestDiagnosticsMerge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("x", "x", "", "")
	b.AddError("y", "y", "", "")
	b.AddWarning("z", "z", "", "")

	a.Merge(b)
	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestDiagnosticString_NoPrefix(t *testing.T) {
	d := Diagnostic{Message: "plain"}
	assert.Equal(t, "plain", d.String())
}
