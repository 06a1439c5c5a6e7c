// Package actions describes the 32-bit action word a player sends every tick.
//
// Each control axis (yaw, pitch, position) is either driven by held keys or,
// for controllers that report absolute motion, by an encoded delta. An
// absolute delta is packed over the key bits of its own axis, so a word is
// decoded into an Intent before anything looks at individual keys.
package actions

import (
	"github.com/cfoust/lockstep/pkg/fixed"
)

type Flags uint32

const (
	ABSOLUTE_YAW_MODE Flags = 1 << iota
	TURNING_LEFT
	TURNING_RIGHT
	SIDESTEP_DONT_TURN
	LOOKING_LEFT
	LOOKING_RIGHT
	_ // absolute yaw bit 5
	_ // absolute yaw bit 6

	ABSOLUTE_PITCH_MODE
	LOOKING_UP
	LOOKING_DOWN
	LOOKING_CENTER
	LOOK_DONT_TURN
	_ // absolute pitch bit 4

	ABSOLUTE_POSITION_MODE
	MOVING_FORWARD
	MOVING_BACKWARD
	_ // absolute position bit 2
	_
	_
	_
	_ // absolute position bit 6

	RUN_DONT_WALK
	SIDESTEPPING_LEFT
	SIDESTEPPING_RIGHT
	SWIM
	LEFT_TRIGGER
	RIGHT_TRIGGER
	ACTION_TRIGGER
	CYCLE_WEAPONS_FORWARD
	CYCLE_WEAPONS_BACKWARD
	TOGGLE_MAP
)

const (
	TURNING            = TURNING_LEFT | TURNING_RIGHT
	LOOKING            = LOOKING_LEFT | LOOKING_RIGHT
	LOOKING_VERTICALLY = LOOKING_UP | LOOKING_DOWN
	MOVING             = MOVING_FORWARD | MOVING_BACKWARD
	SIDESTEPPING       = SIDESTEPPING_LEFT | SIDESTEPPING_RIGHT

	// Anything that isn't movement or looking; carried through untouched.
	TRIGGERS = LEFT_TRIGGER | RIGHT_TRIGGER | ACTION_TRIGGER |
		CYCLE_WEAPONS_FORWARD | CYCLE_WEAPONS_BACKWARD | TOGGLE_MAP
)

const (
	ABSOLUTE_YAW_BITS      = 7
	ABSOLUTE_PITCH_BITS    = 5
	ABSOLUTE_POSITION_BITS = 7

	MAXIMUM_ABSOLUTE_YAW      = 1 << ABSOLUTE_YAW_BITS
	MAXIMUM_ABSOLUTE_PITCH    = 1 << ABSOLUTE_PITCH_BITS
	MAXIMUM_ABSOLUTE_POSITION = 1 << ABSOLUTE_POSITION_BITS

	absoluteYawShift      = 1
	absolutePitchShift    = 9
	absolutePositionShift = 15

	ABSOLUTE_YAW_MASK      = Flags(MAXIMUM_ABSOLUTE_YAW-1) << absoluteYawShift
	ABSOLUTE_PITCH_MASK    = Flags(MAXIMUM_ABSOLUTE_PITCH-1) << absolutePitchShift
	ABSOLUTE_POSITION_MASK = Flags(MAXIMUM_ABSOLUTE_POSITION-1) << absolutePositionShift

	yawKeyBits      = TURNING | SIDESTEP_DONT_TURN | LOOKING
	pitchKeyBits    = LOOKING_VERTICALLY | LOOKING_CENTER | LOOK_DONT_TURN
	positionKeyBits = MOVING

	yawSpareBits      = ABSOLUTE_YAW_MASK &^ yawKeyBits
	pitchSpareBits    = ABSOLUTE_PITCH_MASK &^ pitchKeyBits
	positionSpareBits = ABSOLUTE_POSITION_MASK &^ positionKeyBits
)

func (f Flags) Has(bits Flags) bool {
	return f&bits != 0
}

func GetAbsoluteYaw(f Flags) int32 {
	return int32((f & ABSOLUTE_YAW_MASK) >> absoluteYawShift)
}

func GetAbsolutePitch(f Flags) int32 {
	return int32((f & ABSOLUTE_PITCH_MASK) >> absolutePitchShift)
}

func GetAbsolutePosition(f Flags) int32 {
	return int32((f & ABSOLUTE_POSITION_MASK) >> absolutePositionShift)
}

func SetAbsoluteYaw(f Flags, code int32) Flags {
	return (f &^ ABSOLUTE_YAW_MASK) | ((Flags(code) << absoluteYawShift) & ABSOLUTE_YAW_MASK) | ABSOLUTE_YAW_MODE
}

func SetAbsolutePitch(f Flags, code int32) Flags {
	return (f &^ ABSOLUTE_PITCH_MASK) | ((Flags(code) << absolutePitchShift) & ABSOLUTE_PITCH_MASK) | ABSOLUTE_PITCH_MODE
}

func SetAbsolutePosition(f Flags, code int32) Flags {
	return (f &^ ABSOLUTE_POSITION_MASK) | ((Flags(code) << absolutePositionShift) & ABSOLUTE_POSITION_MASK) | ABSOLUTE_POSITION_MODE
}

// YawVelocity decodes an absolute yaw code into an angular velocity. The
// midpoint of the range is zero.
func YawVelocity(code int32) fixed.Fixed {
	return fixed.Fixed(code-MAXIMUM_ABSOLUTE_YAW/2) << fixed.FIXED_FRACTIONAL_BITS
}

// PitchVelocity decodes an absolute pitch code into a vertical angular
// velocity.
func PitchVelocity(code int32) fixed.Fixed {
	return fixed.Fixed(code-MAXIMUM_ABSOLUTE_PITCH/2) << fixed.FIXED_FRACTIONAL_BITS
}

// PositionVelocity decodes an absolute position code into a forward
// velocity, scaled to the backward limit for negative codes and the forward
// limit otherwise.
func PositionVelocity(code int32, maximumForward, maximumBackward fixed.Fixed) fixed.Fixed {
	delta := int64(code - MAXIMUM_ABSOLUTE_POSITION/2)
	if delta < 0 {
		return fixed.Fixed((delta * int64(maximumBackward)) >> (ABSOLUTE_POSITION_BITS - 1))
	}
	return fixed.Fixed((delta * int64(maximumForward)) >> (ABSOLUTE_POSITION_BITS - 1))
}

func encodeDelta(delta fixed.Fixed, bits uint, maximum int32, snapUp bool) int32 {
	shift := fixed.FIXED_FRACTIONAL_BITS - bits
	unit := fixed.Fixed(1) << shift

	// a tiny positive delta must not alias to "no input"
	if snapUp && delta > 0 && delta < unit {
		delta = unit
	}

	encoded := int32(delta>>shift) + maximum/2
	return fixed.Pin(encoded, 0, maximum-1)
}

// MaskInAbsolutePositioning packs absolute deltas, each in
// [-FIXED_ONE, FIXED_ONE], into an action word. Yaw and pitch are encoded
// whenever there is a delta or the player is still rotating on that axis, so
// that an absolute controller also brings rotation to a stop. An axis that is
// already in absolute mode is left alone.
func MaskInAbsolutePositioning(
	flags Flags,
	angularVelocity fixed.Fixed,
	verticalAngularVelocity fixed.Fixed,
	deltaYaw fixed.Fixed,
	deltaPitch fixed.Fixed,
	deltaPosition fixed.Fixed,
) Flags {
	if (deltaYaw != 0 || angularVelocity != 0) && !flags.Has(ABSOLUTE_YAW_MODE) {
		code := encodeDelta(deltaYaw, ABSOLUTE_YAW_BITS, MAXIMUM_ABSOLUTE_YAW, true)
		flags = SetAbsoluteYaw(flags, code)
	}

	if (deltaPitch != 0 || verticalAngularVelocity != 0) && !flags.Has(ABSOLUTE_PITCH_MODE) {
		code := encodeDelta(deltaPitch, ABSOLUTE_PITCH_BITS, MAXIMUM_ABSOLUTE_PITCH, true)
		flags = SetAbsolutePitch(flags, code)
	}

	if deltaPosition != 0 && !flags.Has(ABSOLUTE_POSITION_MODE) {
		code := encodeDelta(deltaPosition, ABSOLUTE_POSITION_BITS, MAXIMUM_ABSOLUTE_POSITION, false)
		flags = SetAbsolutePosition(flags, code)
	}

	return flags
}
