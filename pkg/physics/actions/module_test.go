package actions

import (
	"math/rand"
	"testing"

	"github.com/cfoust/lockstep/pkg/fixed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKeys(t *testing.T) {
	intent := Decode(TURNING_LEFT | LOOKING_UP | MOVING_FORWARD | RUN_DONT_WALK | SIDESTEPPING_RIGHT | ACTION_TRIGGER)

	assert.Equal(t, YawKeys{Left: true}, intent.Yaw)
	assert.Equal(t, PitchKeys{Up: true}, intent.Pitch)
	assert.Equal(t, PositionKeys{Forward: true}, intent.Position)
	assert.True(t, intent.Run)
	assert.True(t, intent.SidestepRight)
	assert.False(t, intent.SidestepLeft)
	assert.Equal(t, ACTION_TRIGGER, intent.Triggers)
}

func TestDecodeAbsolute(t *testing.T) {
	var f Flags
	f = SetAbsoluteYaw(f, 100)
	f = SetAbsolutePitch(f, 3)
	f = SetAbsolutePosition(f, 127)
	f |= SWIM

	intent := Decode(f)
	assert.Equal(t, AbsoluteYaw{Code: 100}, intent.Yaw)
	assert.Equal(t, AbsolutePitch{Code: 3}, intent.Pitch)
	assert.Equal(t, AbsolutePosition{Code: 127}, intent.Position)
	assert.True(t, intent.Swim)

	// absolute axes have no keys
	assert.Equal(t, YawKeys{}, intent.YawKeys())
	assert.Equal(t, PitchKeys{}, intent.PitchKeys())
	assert.Equal(t, PositionKeys{}, intent.PositionKeys())
}

func TestEncodeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	words := []Flags{0, 0xFFFFFFFF, ABSOLUTE_YAW_MODE, ABSOLUTE_PITCH_MODE | ABSOLUTE_PITCH_MASK}
	for i := 0; i < 10000; i++ {
		words = append(words, Flags(r.Uint32()))
	}

	for _, word := range words {
		require.Equal(t, word, Decode(word).Encode(), "word %#08x", uint32(word))
	}
}

func TestAbsoluteYawDecode(t *testing.T) {
	assert.Equal(t, fixed.Fixed(0), YawVelocity(MAXIMUM_ABSOLUTE_YAW/2))
	assert.Equal(t, -64*fixed.FIXED_ONE, YawVelocity(0))
	assert.Equal(t, 63*fixed.FIXED_ONE, YawVelocity(MAXIMUM_ABSOLUTE_YAW-1))

	assert.Equal(t, fixed.Fixed(0), PitchVelocity(MAXIMUM_ABSOLUTE_PITCH/2))
	assert.Equal(t, -16*fixed.FIXED_ONE, PitchVelocity(0))
}

func TestPositionVelocity(t *testing.T) {
	forward, backward := fixed.Fixed(6400), fixed.Fixed(3200)

	assert.Equal(t, fixed.Fixed(0), PositionVelocity(MAXIMUM_ABSOLUTE_POSITION/2, forward, backward))
	assert.Equal(t, -backward, PositionVelocity(0, forward, backward))
	assert.Equal(t, forward*63/64, PositionVelocity(MAXIMUM_ABSOLUTE_POSITION-1, forward, backward))
}

func TestMaskInAbsolutePositioning(t *testing.T) {
	// nothing to encode
	assert.Equal(t, RUN_DONT_WALK, MaskInAbsolutePositioning(RUN_DONT_WALK, 0, 0, 0, 0, 0))

	// zero delta while still turning encodes the midpoint, which stops the turn
	f := MaskInAbsolutePositioning(0, fixed.FIXED_ONE, 0, 0, 0, 0)
	require.True(t, f.Has(ABSOLUTE_YAW_MODE))
	assert.Equal(t, int32(MAXIMUM_ABSOLUTE_YAW/2), GetAbsoluteYaw(f))
	assert.False(t, f.Has(ABSOLUTE_PITCH_MODE))

	// a tiny positive delta snaps up to the smallest nonzero code
	f = MaskInAbsolutePositioning(0, 0, 0, 1, 1, 0)
	assert.Equal(t, int32(MAXIMUM_ABSOLUTE_YAW/2+1), GetAbsoluteYaw(f))
	assert.Equal(t, int32(MAXIMUM_ABSOLUTE_PITCH/2+1), GetAbsolutePitch(f))

	// out of range deltas are pinned
	f = MaskInAbsolutePositioning(0, 0, 0, fixed.FIXED_ONE, -fixed.FIXED_ONE, -fixed.FIXED_ONE)
	assert.Equal(t, int32(MAXIMUM_ABSOLUTE_YAW-1), GetAbsoluteYaw(f))
	assert.Equal(t, int32(0), GetAbsolutePitch(f))
	assert.Equal(t, int32(0), GetAbsolutePosition(f))

	// an axis that is already absolute is left alone
	already := SetAbsoluteYaw(0, 5)
	f = MaskInAbsolutePositioning(already, 0, 0, fixed.FIXED_ONE/2, 0, 0)
	assert.Equal(t, int32(5), GetAbsoluteYaw(f))

	// position deltas are not snapped
	f = MaskInAbsolutePositioning(0, 0, 0, 0, 0, 1)
	assert.Equal(t, int32(MAXIMUM_ABSOLUTE_POSITION/2), GetAbsolutePosition(f))
}

func TestSetAbsoluteClearsKeys(t *testing.T) {
	f := SetAbsoluteYaw(TURNING_LEFT|TURNING_RIGHT|LOOKING_LEFT|RUN_DONT_WALK, 0)
	assert.Equal(t, ABSOLUTE_YAW_MODE|RUN_DONT_WALK, f)
}

func TestParseNames(t *testing.T) {
	flags, err := Parse([]string{"forward", " Run ", "sidestep-left"})
	require.NoError(t, err)
	assert.Equal(t, MOVING_FORWARD|RUN_DONT_WALK|SIDESTEPPING_LEFT, flags)
	assert.Equal(t, []string{"forward", "run", "sidestep-left"}, flags.Names())

	_, err = Parse([]string{"jump"})
	assert.Error(t, err)
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "", Flags(0).String())
	assert.Equal(t, "turn-left|forward", (TURNING_LEFT | MOVING_FORWARD).String())

	// key bits under an absolute value aren't keys
	f := SetAbsoluteYaw(MOVING_FORWARD, MAXIMUM_ABSOLUTE_YAW-1)
	assert.Equal(t, "forward|yaw=127", f.String())
}
