package physics

import (
	"github.com/cfoust/lockstep/pkg/fixed"
)

type StateFlags uint16

const (
	BELOW_GROUND StateFlags = 1 << iota
	ABOVE_GROUND
	FEET_BELOW_MEDIA
	HEAD_BELOW_MEDIA
	RECENTERING
	STEP_PERIOD
)

func (f StateFlags) Has(bits StateFlags) bool {
	return f&bits != 0
}

func (f StateFlags) With(bits StateFlags, on bool) StateFlags {
	if on {
		return f | bits
	}
	return f &^ bits
}

// Action classifies what the player did during the last tick.
type Action uint8

const (
	STATIONARY Action = iota
	WALKING
	RUNNING
	SLIDING
	AIRBORNE
)

func (a Action) String() string {
	switch a {
	case STATIONARY:
		return "stationary"
	case WALKING:
		return "walking"
	case RUNNING:
		return "running"
	case SLIDING:
		return "sliding"
	case AIRBORNE:
		return "airborne"
	}
	return "unknown"
}

// Variables is everything the integrator carries from one tick to the next
// for a single player. Angles are fixed-point, with NUMBER_OF_ANGLES to the
// circle in the integral part.
type Variables struct {
	HeadDirection fixed.Fixed
	LastDirection fixed.Fixed
	Direction     fixed.Fixed
	Elevation     fixed.Fixed

	AngularVelocity         fixed.Fixed
	VerticalAngularVelocity fixed.Fixed
	// Forward velocity
	Velocity              fixed.Fixed
	PerpendicularVelocity fixed.Fixed
	LastPosition          fixed.Point3D
	Position              fixed.Point3D
	ActualHeight          fixed.Fixed

	// Floor and ceiling under the player as of the last collision pass.
	FloorHeight   fixed.Fixed
	CeilingHeight fixed.Fixed

	ExternalVelocity        fixed.Vector3D
	ExternalAngularVelocity fixed.Fixed

	StepPhase     fixed.Fixed
	StepAmplitude fixed.Fixed

	Flags    StateFlags
	OldFlags StateFlags

	Action Action
}

// Heading is the integral facing of the legs.
func (v *Variables) Heading() fixed.Angle {
	return fixed.FixedAngle(v.Direction)
}
