package physics

import (
	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/physics/actions"
	"github.com/cfoust/lockstep/pkg/physics/constants"
)

const (
	COEFFICIENT_OF_ABSORPTION = 2

	worldToFixedShift = fixed.FIXED_FRACTIONAL_BITS - fixed.WORLD_FRACTIONAL_BITS

	CLOSE_ENOUGH_TO_FLOOR = fixed.Fixed(fixed.WORLD_ONE/16) << worldToFixedShift
	AIRBORNE_HEIGHT       = fixed.Fixed(fixed.WORLD_ONE/16) << worldToFixedShift
	DROP_DEAD_HEIGHT      = fixed.Fixed(fixed.WORLD_ONE_HALF) << worldToFixedShift

	// Swimming only adds lift until the player is rising this many times
	// faster than climbing acceleration.
	MAXIMUM_SWIM_FACTOR = 10
)

// DropDeadHeight is how far a corpse sinks below the floor. With a chase
// camera there is no offset, so the body doesn't visibly drop.
func DropDeadHeight(chaseCam bool) fixed.Fixed {
	if chaseCam {
		return 0
	}
	return DROP_DEAD_HEIGHT
}

// Input is everything about the current tick that doesn't live in Variables.
type Input struct {
	Flags      actions.Flags
	Dead       bool
	LowGravity bool
	ChaseCam   bool
}

type step struct {
	c      constants.Set
	in     Input
	intent actions.Intent
	v      Variables

	// Height above the floor at the start of the tick. Positive is in the
	// air, negative means the floor has risen into the player.
	deltaZ      fixed.Fixed
	newPosition fixed.Point3D
}

type Stage struct {
	Name  string
	Apply func(step) step
}

// STAGES runs in this order for every player on every peer. Reordering them
// changes simulation results.
var STAGES = []Stage{
	{"death", deathOverride},
	{"modifiers", remapModifiers},
	{"heading rate", updateHeadingRate},
	{"head look", updateHeadLook},
	{"pitch rate", updatePitchRate},
	{"linear rate", updateLinearRates},
	{"vertical", updateVerticalVelocity},
	{"elevation", integrateElevation},
	{"heading", integrateHeading},
	{"planar", integratePlanarPosition},
	{"ground", updateGroundState},
	{"external decay", decayExternalVelocity},
	{"step", updateStepPhase},
	{"action", classifyAction},
}

func newStep(c constants.Set, v Variables, in Input) step {
	return step{
		c:      c,
		in:     in,
		intent: actions.Decode(in.Flags),
		v:      v,
	}
}

// Advance runs one tick of the integrator. The returned Position is a
// proposal; Resolve decides where the player actually ends up.
func Advance(c constants.Set, v Variables, in Input) Variables {
	s := newStep(c, v, in)
	for _, stage := range STAGES {
		s = stage.Apply(s)
	}
	return s.v
}

// Dead players lose all control. The only thing left is the pitch drifting
// toward whatever knocked them over.
func deathOverride(s step) step {
	if s.in.Dead {
		heading := s.v.Heading()
		cosine, sine := int64(fixed.Cos(heading)), int64(fixed.Sin(heading))
		velocity := int64(s.v.Velocity)

		dot := (((velocity*cosine)>>fixed.TRIG_SHIFT+int64(s.v.ExternalVelocity.I))*cosine +
			((velocity*sine)>>fixed.TRIG_SHIFT+int64(s.v.ExternalVelocity.J))*sine) >> fixed.TRIG_SHIFT

		if dot > 0 && dot < int64(s.c.MaximumForwardVelocity>>4) {
			dot = 0
		}

		s.intent = actions.Intent{
			Yaw:      actions.YawKeys{},
			Pitch:    actions.PitchKeys{Up: dot < 0, Down: dot > 0},
			Position: actions.PositionKeys{},
		}

		s.v.FloorHeight -= DropDeadHeight(s.in.ChaseCam)
	}

	s.deltaZ = s.v.Position.Z - s.v.FloorHeight
	return s
}

// Sidestep and look modifiers turn one set of keys into another.
func remapModifiers(s step) step {
	if yaw, ok := s.intent.Yaw.(actions.YawKeys); ok && yaw.Turning() && yaw.SidestepModifier {
		s.intent.SidestepLeft = s.intent.SidestepLeft || yaw.Left
		s.intent.SidestepRight = s.intent.SidestepRight || yaw.Right
		yaw.Left, yaw.Right = false, false
		s.intent.Yaw = yaw
	}

	position, ok := s.intent.Position.(actions.PositionKeys)
	pitch, pitchKeys := s.intent.Pitch.(actions.PitchKeys)
	if ok && pitchKeys && position.Moving() && pitch.LookModifier {
		pitch.Up = pitch.Up || position.Forward
		pitch.Down = pitch.Down || position.Backward
		s.intent.Pitch = pitch
		s.intent.Position = actions.PositionKeys{}
	}

	return s
}

// accelerate moves rate one tick toward limit in the direction selected by
// negative/positive. Reversing direction adds the deceleration on top of the
// acceleration. With neither (or both) directions held the rate decays to
// zero without overshooting.
func accelerate(
	rate fixed.Fixed,
	negative bool,
	positive bool,
	acceleration fixed.Fixed,
	deceleration fixed.Fixed,
	negativeLimit fixed.Fixed,
	positiveLimit fixed.Fixed,
) fixed.Fixed {
	switch {
	case negative && !positive:
		delta := acceleration
		if rate > 0 {
			delta += deceleration
		}
		return fixed.Floor(rate-delta, -negativeLimit)
	case positive && !negative:
		delta := acceleration
		if rate < 0 {
			delta += deceleration
		}
		return fixed.Ceiling(rate+delta, positiveLimit)
	}

	return decelerate(rate, deceleration)
}

func decelerate(rate fixed.Fixed, deceleration fixed.Fixed) fixed.Fixed {
	if rate >= 0 {
		return fixed.Floor(rate-deceleration, 0)
	}
	return fixed.Ceiling(rate+deceleration, 0)
}

func outOfRange(rate, negativeLimit, positiveLimit fixed.Fixed) bool {
	return rate < -negativeLimit || rate > positiveLimit
}

func updateHeadingRate(s step) step {
	switch yaw := s.intent.Yaw.(type) {
	case actions.AbsoluteYaw:
		s.v.AngularVelocity = actions.YawVelocity(yaw.Code)
	case actions.YawKeys:
		maximum := s.c.MaximumAngularVelocity

		// ignore turning until we're back in range
		if outOfRange(s.v.AngularVelocity, maximum, maximum) {
			yaw.Left, yaw.Right = false, false
			s.intent.Yaw = yaw
		}

		s.v.AngularVelocity = accelerate(
			s.v.AngularVelocity,
			yaw.Left,
			yaw.Right,
			s.c.AngularAcceleration,
			s.c.AngularDeceleration,
			maximum,
			maximum,
		)
	}

	return s
}

func updateHeadLook(s step) step {
	yaw, ok := s.intent.Yaw.(actions.YawKeys)
	if !ok {
		return s
	}

	head := s.v.HeadDirection
	switch {
	case yaw.LookLeft && yaw.LookRight:
	case yaw.LookLeft:
		head = fixed.Floor(head-s.c.FastAngularVelocity, -s.c.FastAngularMaximum)
	case yaw.LookRight:
		head = fixed.Ceiling(head+s.c.FastAngularVelocity, s.c.FastAngularMaximum)
	default:
		head = decelerate(head, s.c.FastAngularVelocity)
	}
	s.v.HeadDirection = head

	return s
}

func preventsRecentering(intent actions.Intent, pitch actions.PitchKeys) bool {
	yaw := intent.YawKeys()
	return yaw.Turning() ||
		yaw.Looking() ||
		yaw.SidestepModifier ||
		intent.Sidestepping() ||
		pitch.Looking() ||
		pitch.LookModifier
}

func updatePitchRate(s step) step {
	switch pitch := s.intent.Pitch.(type) {
	case actions.AbsolutePitch:
		s.v.VerticalAngularVelocity = actions.PitchVelocity(pitch.Code)
	case actions.PitchKeys:
		if pitch.Center {
			s.v.Flags |= RECENTERING
		}

		// recentering overrides whatever the player is holding
		if s.v.Flags.Has(RECENTERING) {
			pitch.Up = s.v.Elevation < 0
			pitch.Down = !pitch.Up
		}

		// running flat out with nothing else held levels the view
		if !preventsRecentering(s.intent, pitch) {
			position := s.intent.PositionKeys()
			if (position.Forward && s.v.Velocity == s.c.MaximumForwardVelocity) ||
				(position.Backward && s.v.Velocity == -s.c.MaximumBackwardVelocity) {
				if s.v.Elevation < 0 {
					s.v.Elevation = fixed.Ceiling(s.v.Elevation+s.c.AngularRecenteringVelocity, 0)
				} else {
					s.v.Elevation = fixed.Floor(s.v.Elevation-s.c.AngularRecenteringVelocity, 0)
				}
			}
		}

		maximum := s.c.MaximumAngularVelocity
		if s.in.Dead {
			maximum >>= 3
		}

		s.v.VerticalAngularVelocity = accelerate(
			s.v.VerticalAngularVelocity,
			pitch.Down,
			pitch.Up,
			s.c.AngularAcceleration,
			s.c.AngularDeceleration,
			maximum,
			maximum,
		)

		s.intent.Pitch = pitch
	}

	return s
}

// On the ground (or being pushed up by it) the player controls their
// velocity; in the air they don't, unless they're swimming.
func updateLinearRates(s step) step {
	if s.deltaZ > 0 && !s.v.Flags.Has(HEAD_BELOW_MEDIA) {
		return s
	}

	switch position := s.intent.Position.(type) {
	case actions.AbsolutePosition:
		s.v.Velocity = actions.PositionVelocity(
			position.Code,
			s.c.MaximumForwardVelocity,
			s.c.MaximumBackwardVelocity,
		)
	case actions.PositionKeys:
		if outOfRange(s.v.Velocity, s.c.MaximumBackwardVelocity, s.c.MaximumForwardVelocity) {
			position = actions.PositionKeys{}
			s.intent.Position = position
		}

		s.v.Velocity = accelerate(
			s.v.Velocity,
			position.Backward,
			position.Forward,
			s.c.Acceleration,
			s.c.Deceleration,
			s.c.MaximumBackwardVelocity,
			s.c.MaximumForwardVelocity,
		)
	}

	maximum := s.c.MaximumPerpendicularVelocity
	if outOfRange(s.v.PerpendicularVelocity, maximum, maximum) {
		s.intent.SidestepLeft, s.intent.SidestepRight = false, false
	}

	s.v.PerpendicularVelocity = accelerate(
		s.v.PerpendicularVelocity,
		s.intent.SidestepLeft,
		s.intent.SidestepRight,
		s.c.Acceleration,
		s.c.Deceleration,
		maximum,
		maximum,
	)

	return s
}

// The floor pushes the player up when it rises into them and gravity pulls
// them down when they're above it.
func updateVerticalVelocity(s step) step {
	k := s.v.ExternalVelocity.K

	if s.deltaZ < 0 {
		k = fixed.Ceiling(k+s.c.ClimbingAcceleration, s.c.TerminalVelocity)
	}

	if s.deltaZ > 0 {
		gravity := s.c.GravitationalAcceleration
		terminal := s.c.TerminalVelocity

		if s.in.LowGravity {
			gravity >>= 1
		}
		if s.v.Flags.Has(FEET_BELOW_MEDIA) {
			gravity >>= 1
			terminal >>= 1
		}

		k = fixed.Floor(k-gravity, -terminal)
	}

	if s.intent.Swim &&
		s.v.Flags.Has(HEAD_BELOW_MEDIA) &&
		k < MAXIMUM_SWIM_FACTOR*s.c.ClimbingAcceleration {
		k += s.c.ClimbingAcceleration
	}

	s.v.ExternalVelocity.K = k
	return s
}

func integrateElevation(s step) step {
	s.v.Elevation = fixed.Pin(
		s.v.Elevation+s.v.VerticalAngularVelocity,
		-s.c.MaximumElevation,
		s.c.MaximumElevation,
	)

	pitch, ok := s.intent.Pitch.(actions.PitchKeys)
	if ok && s.v.Flags.Has(RECENTERING) {
		if (s.v.Elevation <= 0 && pitch.Down) || (s.v.Elevation >= 0 && pitch.Up) {
			s.v.Elevation = 0
			s.v.VerticalAngularVelocity = 0
			s.v.Flags &^= RECENTERING
		}
	}

	return s
}

func integrateHeading(s step) step {
	const full = fixed.Fixed(fixed.FULL_CIRCLE) << fixed.FIXED_FRACTIONAL_BITS

	s.v.LastDirection = s.v.Direction
	s.v.Direction = ((s.v.Direction+s.v.AngularVelocity)%full + full) % full

	return s
}

func integratePlanarPosition(s step) step {
	dx, dy := fixed.Rotate(s.v.Velocity, s.v.PerpendicularVelocity, s.v.Heading())

	s.newPosition = s.v.Position
	s.newPosition.X += dx
	s.newPosition.Y += dy

	return s
}

// Landing, surfacing through the floor and bumping the ceiling absorb or
// reflect vertical velocity. Once the player is slow and close enough to the
// floor they come to rest on it exactly.
func updateGroundState(s step) step {
	v := &s.v
	z := s.newPosition.Z
	k := v.ExternalVelocity.K

	v.OldFlags = v.Flags
	v.Flags = v.Flags.With(BELOW_GROUND, z < v.FloorHeight)
	v.Flags = v.Flags.With(ABOVE_GROUND, z > v.FloorHeight)

	if k > 0 && v.OldFlags.Has(BELOW_GROUND) && !v.Flags.Has(BELOW_GROUND) {
		k /= 2 * COEFFICIENT_OF_ABSORPTION
	}

	if k > 0 && z+v.ActualHeight >= v.CeilingHeight {
		k /= -COEFFICIENT_OF_ABSORPTION
		z = v.CeilingHeight - v.ActualHeight
	}

	if k < 0 && !v.OldFlags.Has(BELOW_GROUND) && !v.Flags.Has(ABOVE_GROUND) {
		k /= -COEFFICIENT_OF_ABSORPTION
	}

	if fixed.Abs(k) < s.c.ClimbingAcceleration && fixed.Abs(v.FloorHeight-z) < CLOSE_ENOUGH_TO_FLOOR {
		k = 0
		z = v.FloorHeight
		v.Flags &^= BELOW_GROUND | ABOVE_GROUND
	}

	v.ExternalVelocity.K = k

	s.newPosition.X += v.ExternalVelocity.I
	s.newPosition.Y += v.ExternalVelocity.J
	s.newPosition.Z = z + k

	v.LastPosition = v.Position
	v.Position = s.newPosition

	return s
}

// Knockback fades by moving the horizontal external velocity straight
// toward zero, which keeps its direction steady.
func decayExternalVelocity(s step) step {
	dx, dy := int64(s.v.ExternalVelocity.I), int64(s.v.ExternalVelocity.J)

	delta := int64(s.c.ExternalDeceleration)
	if s.deltaZ > 0 {
		delta >>= 2
	}

	magnitude := int64(fixed.ISqrt(uint64(dx*dx) + uint64(dy*dy)))
	if magnitude != 0 && magnitude > fixed.Abs(delta) {
		s.v.ExternalVelocity.I -= fixed.Fixed((dx * delta) / magnitude)
		s.v.ExternalVelocity.J -= fixed.Fixed((dy * delta) / magnitude)
	} else {
		s.v.ExternalVelocity.I = 0
		s.v.ExternalVelocity.J = 0
	}

	s.v.ExternalAngularVelocity = decelerate(s.v.ExternalAngularVelocity, s.c.ExternalAngularDeceleration)

	return s
}

func updateStepPhase(s step) step {
	v := &s.v
	v.Flags &^= STEP_PERIOD

	fastest := int64(fixed.Max(fixed.Abs(v.Velocity), fixed.Abs(v.PerpendicularVelocity)))
	if s.c.MaximumForwardVelocity != 0 {
		v.StepAmplitude = fixed.Fixed(fastest * int64(fixed.FIXED_ONE) / int64(s.c.MaximumForwardVelocity))
	} else {
		// models that can't move forward at all, like a floating observer
		v.StepAmplitude = fixed.Fixed(fastest * int64(fixed.FIXED_ONE))
	}

	if s.deltaZ < 0 {
		return s
	}

	if v.Velocity != 0 || v.PerpendicularVelocity != 0 {
		v.StepPhase += s.c.StepDelta
		if v.StepPhase >= fixed.FIXED_ONE {
			v.StepPhase -= fixed.FIXED_ONE
			v.Flags |= STEP_PERIOD
		}
		return s
	}

	// let any leftover phase run out toward whichever end is closer
	switch {
	case v.StepPhase == 0:
	case v.StepPhase > fixed.FIXED_ONE_HALF:
		v.StepPhase += s.c.StepDelta
		if v.StepPhase >= fixed.FIXED_ONE {
			v.StepPhase = 0
		}
	default:
		v.StepPhase -= s.c.StepDelta
		if v.StepPhase < 0 {
			v.StepPhase = 0
		}
	}

	return s
}

func classifyAction(s step) step {
	v := &s.v

	threshold := AIRBORNE_HEIGHT
	if s.in.Dead {
		threshold += DropDeadHeight(s.in.ChaseCam)
	}

	switch {
	case s.deltaZ >= threshold:
		v.Action = AIRBORNE
	case v.AngularVelocity != 0 || v.Velocity != 0 || v.PerpendicularVelocity != 0:
		if s.intent.Run {
			v.Action = RUNNING
		} else {
			v.Action = WALKING
		}
	case !v.ExternalVelocity.IsZero():
		v.Action = SLIDING
	default:
		v.Action = STATIONARY
	}

	return s
}
