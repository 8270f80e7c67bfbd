package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tealayout/splitpane/geom"
	"github.com/tealayout/splitpane/splitlayout"
)

func TestParseEmptyKeepsDefaults(t *testing.T) {
	s, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestParseFullDocument(t *testing.T) {
	s, err := Parse(`
border = 2.0
center_min_size = [20.0, 10.0]

[left]
value = 30.0
min = 12.0

[right]
value = 24.0
min = 12.0
lock = true

[top]
value = 6.0
min = 2.0

[bottom]
value = 4.0
min = 2.0
`)
	require.NoError(t, err)

	assert.Equal(t, 2.0, s.Border)
	assert.Equal(t, geom.Vec{X: 20, Y: 10}, s.CenterMinSize)
	assert.Equal(t, splitlayout.EdgeSettings{Value: 30, MinValue: 12}, s.Left)
	assert.Equal(t, splitlayout.EdgeSettings{Value: 24, MinValue: 12, Lock: true}, s.Right)
	assert.Equal(t, splitlayout.EdgeSettings{Value: 6, MinValue: 2}, s.Top)
	assert.Equal(t, splitlayout.EdgeSettings{Value: 4, MinValue: 2}, s.Bottom)
}

func TestParsePartialOverride(t *testing.T) {
	s, err := Parse("[left]\nvalue = 42.0\n")
	require.NoError(t, err)

	def := Default()
	assert.Equal(t, 42.0, s.Left.Value)
	assert.Equal(t, def.Left.MinValue, s.Left.MinValue)
	assert.Equal(t, def.Right, s.Right)
	assert.Equal(t, def.Border, s.Border)
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse("borderr = 2.0\n")
	assert.ErrorContains(t, err, "unknown setting")
}

func TestParseBadCenterMinSize(t *testing.T) {
	_, err := Parse("center_min_size = [1.0, 2.0, 3.0]\n")
	assert.ErrorContains(t, err, "center_min_size")
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("border = =\n")
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, FileName),
		[]byte("border = 3.0\n"),
		0o644,
	))
	t.Setenv("SPLITPANE_CONFIG_DIR", dir)

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.Border)
}

func TestLoadWithoutFileFallsBack(t *testing.T) {
	t.Setenv("SPLITPANE_CONFIG_DIR", t.TempDir())

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}
