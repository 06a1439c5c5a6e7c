package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversions(t *testing.T) {
	assert.Equal(t, FIXED_ONE, WorldToFixed(WORLD_ONE))
	assert.Equal(t, WORLD_ONE_HALF, FixedToWorld(FIXED_ONE_HALF))
	assert.Equal(t, WorldDistance(-1), FixedToWorld(-1), "shifts round toward negative infinity")
	assert.Equal(t, int32(3), IntegralPart(3*FIXED_ONE+FIXED_ONE_HALF))
	assert.Equal(t, int32(-1), IntegralPart(-FIXED_ONE_HALF))

	p := WorldPoint3D{X: 10, Y: -20, Z: 30}
	assert.Equal(t, p, p.ToFixed().ToWorld())
}

func TestNormalizeAngle(t *testing.T) {
	assert.Equal(t, Angle(0), NormalizeAngle(FULL_CIRCLE))
	assert.Equal(t, FULL_CIRCLE-1, NormalizeAngle(-1))
	assert.Equal(t, QUARTER_CIRCLE, NormalizeAngle(FULL_CIRCLE+QUARTER_CIRCLE))
	assert.Equal(t, FULL_CIRCLE-QUARTER_CIRCLE, FixedAngle(-Fixed(QUARTER_CIRCLE)*FIXED_ONE))
}

func TestClamps(t *testing.T) {
	assert.Equal(t, 5, Pin(10, -5, 5))
	assert.Equal(t, -5, Pin(-10, -5, 5))
	assert.Equal(t, 3, Pin(3, -5, 5))

	assert.Equal(t, Fixed(0), Floor(Fixed(-3), 0))
	assert.Equal(t, Fixed(7), Floor(Fixed(7), 0))
	assert.Equal(t, Fixed(0), Ceiling(Fixed(3), 0))
	assert.Equal(t, Fixed(-7), Ceiling(Fixed(-7), 0))

	assert.Equal(t, Fixed(4), Abs(Fixed(-4)))
	assert.Equal(t, -1, Sgn(-9))
	assert.Equal(t, 0, Sgn(0))
	assert.Equal(t, 1, Sgn(Fixed(12)))
}

func TestISqrt(t *testing.T) {
	for n := uint64(0); n < 10000; n++ {
		root := ISqrt(n)
		assert.True(t, root*root <= n && (root+1)*(root+1) > n, "isqrt(%d) = %d", n, root)
	}

	assert.Equal(t, uint64(1<<31), ISqrt(1<<62))
	assert.Equal(t, uint64(4294967295), ISqrt(18446744065119617025))
}

func TestMulShift(t *testing.T) {
	assert.Equal(t, int32(-1), MulShift(-1, 1, 14), "arithmetic shift of a negative product")
	assert.Equal(t, int32(FIXED_ONE), MulShift(int32(FIXED_ONE), TRIG_MAGNITUDE, TRIG_SHIFT))
}
