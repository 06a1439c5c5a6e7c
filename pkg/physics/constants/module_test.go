package constants

import (
	"testing"

	"github.com/cfoust/lockstep/pkg/fixed"

	opt "github.com/repeale/fp-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	table := DEFAULT_TABLE

	for _, model := range []Model{EDITOR, EARTH_GRAVITY} {
		walking := table.Lookup(model, false)
		require.False(t, opt.IsNone(walking))
		assert.Equal(t, DEFAULT_TABLE[WALKING], walking.Value)

		running := table.Lookup(model, true)
		require.False(t, opt.IsNone(running))
		assert.Equal(t, DEFAULT_TABLE[RUNNING], running.Value)
	}

	assert.True(t, opt.IsNone(table.Lookup(LOW_GRAVITY, false)))
	assert.True(t, opt.IsNone(table.Lookup(Model(42), true)))
	assert.True(t, opt.IsNone(table.Lookup(Model(-1), true)))
}

func TestMustLookupPanics(t *testing.T) {
	table := DEFAULT_TABLE

	assert.NotPanics(t, func() { table.MustLookup(EARTH_GRAVITY, true) })
	assert.Panics(t, func() { table.MustLookup(LOW_GRAVITY, true) })
	assert.Panics(t, func() { table.MustLookup(NUMBER_OF_MODELS, false) })
}

func TestParseModel(t *testing.T) {
	model := ParseModel("earth-gravity")
	require.False(t, opt.IsNone(model))
	assert.Equal(t, EARTH_GRAVITY, model.Value)

	assert.True(t, opt.IsNone(ParseModel("moon")))
}

func TestRunningIsFaster(t *testing.T) {
	walking, running := DEFAULT_TABLE[WALKING], DEFAULT_TABLE[RUNNING]
	assert.Greater(t, running.MaximumForwardVelocity, walking.MaximumForwardVelocity)
	assert.Greater(t, running.MaximumAngularVelocity, walking.MaximumAngularVelocity)
	assert.Equal(t, fixed.Fixed(fixed.QUARTER_CIRCLE)*fixed.FIXED_ONE/3, walking.MaximumElevation)
}

func TestDigest(t *testing.T) {
	a := DEFAULT_TABLE
	b := DEFAULT_TABLE
	assert.Equal(t, a.Digest(), b.Digest())

	b[RUNNING].Acceleration++
	assert.NotEqual(t, a.Digest(), b.Digest())
}
