package divergence

import (
	"testing"

	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/physics"

	opt "github.com/repeale/fp-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(x fixed.WorldDistance) *physics.Player {
	return &physics.Player{
		Body: physics.Body{Location: fixed.WorldPoint3D{X: x}},
	}
}

func TestRecordThenCompare(t *testing.T) {
	c := New()
	for i := 0; i < 10; i++ {
		c.Observe(at(fixed.WorldDistance(i)))
	}
	recorded := c.Digest()

	c.Begin()
	assert.Equal(t, 2, c.Pass())
	for i := 0; i < 10; i++ {
		c.Observe(at(fixed.WorldDistance(i)))
	}
	assert.True(t, opt.IsNone(c.First()))
	assert.Equal(t, recorded, c.Digest())

	c.Begin()
	for i := 0; i < 10; i++ {
		x := fixed.WorldDistance(i)
		if i >= 4 {
			x++
		}
		c.Observe(at(x))
	}

	first := c.First()
	require.False(t, opt.IsNone(first))
	assert.Equal(t, 3, first.Value.Pass)
	assert.Equal(t, 4, first.Value.Index)
	assert.Equal(t, fixed.WorldDistance(4), first.Value.Expected.Location.X)
	assert.Equal(t, fixed.WorldDistance(5), first.Value.Actual.Location.X)

	// later passes never change the recording
	assert.Equal(t, recorded, c.Digest())
}

func TestFacingCounts(t *testing.T) {
	c := New()
	c.Observe(at(0))
	c.Begin()

	turned := at(0)
	turned.Body.Facing = 1
	c.Observe(turned)
	assert.False(t, opt.IsNone(c.First()))
}

func TestRecordingIsBounded(t *testing.T) {
	c := New()
	for i := 0; i < SAVED_POINT_COUNT+10; i++ {
		c.Observe(at(0))
	}
	assert.Len(t, c.samples, SAVED_POINT_COUNT)
}

func TestBeginWithoutSamples(t *testing.T) {
	c := New()
	c.Begin()
	assert.Equal(t, 1, c.Pass())
}
