package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/physics/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseConstants(t *testing.T) {
	defaults := constants.DEFAULT_TABLE

	// misspelled key
	_, err := parseConstants([]byte(`
walking:
  maximum_forward_velocity: 4681
  maximum_forward_velocty: 9
running: {}
`))
	assert.Error(t, err)

	// unknown variant
	_, err = parseConstants([]byte(`
walking: {}
running: {}
crawling: {}
`))
	assert.Error(t, err)

	// missing variant
	_, err = parseConstants([]byte(`
walking:
  maximum_forward_velocity: 4681
`))
	assert.Error(t, err)

	_, err = parseConstants([]byte(``))
	assert.Error(t, err)

	// omitted fields keep their stock values
	table, err := parseConstants([]byte(`
walking:
  maximum_forward_velocity: 4681
running: {}
`))
	require.NoError(t, err)
	assert.Equal(t, fixed.Fixed(4681), table[constants.WALKING].MaximumForwardVelocity)
	assert.Equal(t, defaults[constants.WALKING].Acceleration, table[constants.WALKING].Acceleration)
	assert.Equal(t, defaults[constants.RUNNING], table[constants.RUNNING])
}

func TestConstantsYAML(t *testing.T) {
	defaults := constants.DEFAULT_TABLE

	out, err := yaml.Marshal(tableYAML{
		Walking: defaults[constants.WALKING],
		Running: defaults[constants.RUNNING],
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), "maximum_forward_velocity:")
	assert.Contains(t, string(out), "half_camera_separation:")

	table, err := parseConstants(out)
	require.NoError(t, err)
	assert.Equal(t, defaults, table)
}

func TestPackConstants(t *testing.T) {
	dir := t.TempDir()

	source := filepath.Join(dir, "constants.yaml")
	require.NoError(t, os.WriteFile(source, []byte(`
walking:
  terminal_velocity: 5000
running: {}
`), 0644))

	output := filepath.Join(dir, "constants.bin")
	require.NoError(t, packConstants(output, source))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	table, err := constants.UnpackTable(data)
	require.NoError(t, err)
	assert.Equal(t, fixed.Fixed(5000), table[constants.WALKING].TerminalVelocity)
	assert.Equal(t, constants.DEFAULT_TABLE[constants.RUNNING], table[constants.RUNNING])

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("walking:\n  terminal_velocty: 5000\nrunning: {}\n"), 0644))
	assert.Error(t, packConstants(filepath.Join(dir, "broken.bin"), broken))
}
