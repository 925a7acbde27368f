package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/raycross/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, geometry.DefaultSolver(), c.Solver())
	assert.False(t, c.SkipErrors())
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
tolerance: 1.0e-6
widen_bounds: true
on_error: skip
input_format: geojson
`))
	require.NoError(t, err)
	assert.Equal(t, 1e-6, c.Tolerance)
	assert.True(t, c.WidenBounds)
	assert.True(t, c.SkipErrors())
	assert.Equal(t, "geojson", c.InputFormat)
	// Untouched keys keep their defaults
	assert.Equal(t, "text", c.OutputFormat)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, geometry.Solver{Tolerance: 1e-6, WidenBounds: true}, c.Solver())
}

func TestParseInvalid(t *testing.T) {
	testCases := map[string]string{
		"zero tolerance":     "tolerance: 0",
		"negative tolerance": "tolerance: -1",
		"unknown policy":     "on_error: retry",
		"unknown input":      "input_format: dxf",
		"unknown output":     "output_format: svg",
		"unknown level":      "log_level: loud",
		"not yaml":           "tolerance: [",
	}
	for name, doc := range testCases {
		doc := doc
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raycross.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\ndraw: out.png\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "out.png", c.Draw)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
