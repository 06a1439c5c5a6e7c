package constants

import (
	"github.com/cfoust/lockstep/pkg/fixed"

	"github.com/cespare/xxhash/v2"
	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
)

// Set is one bundle of movement limits. Field order is the on-disk order.
type Set struct {
	MaximumForwardVelocity       fixed.Fixed `yaml:"maximum_forward_velocity"`
	MaximumBackwardVelocity      fixed.Fixed `yaml:"maximum_backward_velocity"`
	MaximumPerpendicularVelocity fixed.Fixed `yaml:"maximum_perpendicular_velocity"`
	Acceleration                 fixed.Fixed `yaml:"acceleration"`
	Deceleration                 fixed.Fixed `yaml:"deceleration"`
	AirborneDeceleration         fixed.Fixed `yaml:"airborne_deceleration"`
	GravitationalAcceleration    fixed.Fixed `yaml:"gravitational_acceleration"`
	ClimbingAcceleration         fixed.Fixed `yaml:"climbing_acceleration"`
	TerminalVelocity             fixed.Fixed `yaml:"terminal_velocity"`
	ExternalDeceleration         fixed.Fixed `yaml:"external_deceleration"`

	AngularAcceleration         fixed.Fixed `yaml:"angular_acceleration"`
	AngularDeceleration         fixed.Fixed `yaml:"angular_deceleration"`
	MaximumAngularVelocity      fixed.Fixed `yaml:"maximum_angular_velocity"`
	AngularRecenteringVelocity  fixed.Fixed `yaml:"angular_recentering_velocity"`
	FastAngularVelocity         fixed.Fixed `yaml:"fast_angular_velocity"`
	FastAngularMaximum          fixed.Fixed `yaml:"fast_angular_maximum"`
	MaximumElevation            fixed.Fixed `yaml:"maximum_elevation"`
	ExternalAngularDeceleration fixed.Fixed `yaml:"external_angular_deceleration"`

	StepDelta     fixed.Fixed `yaml:"step_delta"`
	StepAmplitude fixed.Fixed `yaml:"step_amplitude"`
	Radius        fixed.Fixed `yaml:"radius"`
	Height        fixed.Fixed `yaml:"height"`
	DeadHeight    fixed.Fixed `yaml:"dead_height"`
	CameraHeight  fixed.Fixed `yaml:"camera_height"`
	SplashHeight  fixed.Fixed `yaml:"splash_height"`

	HalfCameraSeparation fixed.Fixed `yaml:"half_camera_separation"`
}

// Variant picks walking or running limits within a physics model.
type Variant int

const (
	WALKING Variant = iota
	RUNNING
	NUMBER_OF_VARIANTS
)

// Model is the world's physics model. Only EDITOR and EARTH_GRAVITY have
// constants; LOW_GRAVITY was never given any.
type Model int16

const (
	EDITOR Model = iota
	EARTH_GRAVITY
	LOW_GRAVITY
	NUMBER_OF_MODELS
)

func (m Model) String() string {
	switch m {
	case EDITOR:
		return "editor"
	case EARTH_GRAVITY:
		return "earth-gravity"
	case LOW_GRAVITY:
		return "low-gravity"
	}
	return "unknown"
}

// ParseModel maps a configuration name to a model.
func ParseModel(name string) opt.Option[Model] {
	for model := EDITOR; model < NUMBER_OF_MODELS; model++ {
		if model.String() == name {
			return opt.Some(model)
		}
	}
	return opt.None[Model]()
}

// Table holds every constant set a session can select from. Tables are
// passed by value and never modified once a session starts.
type Table [NUMBER_OF_VARIANTS]Set

var DEFAULT_TABLE = Table{
	WALKING: {
		MaximumForwardVelocity:       fixed.FIXED_ONE / 14,
		MaximumBackwardVelocity:      fixed.FIXED_ONE / 17,
		MaximumPerpendicularVelocity: fixed.FIXED_ONE / 20,
		Acceleration:                 fixed.FIXED_ONE / 200,
		Deceleration:                 fixed.FIXED_ONE / 100,
		AirborneDeceleration:         fixed.FIXED_ONE / 180,
		GravitationalAcceleration:    fixed.FIXED_ONE / 400,
		ClimbingAcceleration:         fixed.FIXED_ONE / 200,
		TerminalVelocity:             fixed.FIXED_ONE / 14,
		ExternalDeceleration:         fixed.FIXED_ONE / 200,

		AngularAcceleration:         (5 * fixed.FIXED_ONE) / 8,
		AngularDeceleration:         (5 * fixed.FIXED_ONE) / 4,
		MaximumAngularVelocity:      6 * fixed.FIXED_ONE,
		AngularRecenteringVelocity:  (3 * fixed.FIXED_ONE) / 2,
		FastAngularVelocity:         5 * fixed.FIXED_ONE,
		FastAngularMaximum:          21 * fixed.FIXED_ONE,
		MaximumElevation:            fixed.Fixed(fixed.QUARTER_CIRCLE) * fixed.FIXED_ONE / 3,
		ExternalAngularDeceleration: fixed.FIXED_ONE / 3,

		StepDelta:     fixed.FIXED_ONE / 20,
		StepAmplitude: fixed.FIXED_ONE / 20,
		Radius:        fixed.FIXED_ONE / 4,
		Height:        (4 * fixed.FIXED_ONE) / 5,
		DeadHeight:    fixed.FIXED_ONE / 3,
		CameraHeight:  fixed.FIXED_ONE / 5,
		SplashHeight:  fixed.FIXED_ONE / 2,

		HalfCameraSeparation: fixed.FIXED_ONE / 32,
	},
	RUNNING: {
		MaximumForwardVelocity:       fixed.FIXED_ONE / 8,
		MaximumBackwardVelocity:      fixed.FIXED_ONE / 12,
		MaximumPerpendicularVelocity: fixed.FIXED_ONE / 13,
		Acceleration:                 fixed.FIXED_ONE / 100,
		Deceleration:                 fixed.FIXED_ONE / 50,
		AirborneDeceleration:         fixed.FIXED_ONE / 180,
		GravitationalAcceleration:    fixed.FIXED_ONE / 400,
		ClimbingAcceleration:         fixed.FIXED_ONE / 300,
		TerminalVelocity:             fixed.FIXED_ONE / 14,
		ExternalDeceleration:         fixed.FIXED_ONE / 200,

		AngularAcceleration:         (5 * fixed.FIXED_ONE) / 4,
		AngularDeceleration:         (5 * fixed.FIXED_ONE) / 2,
		MaximumAngularVelocity:      10 * fixed.FIXED_ONE,
		AngularRecenteringVelocity:  (3 * fixed.FIXED_ONE) / 2,
		FastAngularVelocity:         5 * fixed.FIXED_ONE,
		FastAngularMaximum:          21 * fixed.FIXED_ONE,
		MaximumElevation:            fixed.Fixed(fixed.QUARTER_CIRCLE) * fixed.FIXED_ONE / 3,
		ExternalAngularDeceleration: fixed.FIXED_ONE / 3,

		StepDelta:     fixed.FIXED_ONE / 15,
		StepAmplitude: fixed.FIXED_ONE / 15,
		Radius:        fixed.FIXED_ONE / 4,
		Height:        (4 * fixed.FIXED_ONE) / 5,
		DeadHeight:    fixed.FIXED_ONE / 3,
		CameraHeight:  fixed.FIXED_ONE / 5,
		SplashHeight:  fixed.FIXED_ONE / 2,

		HalfCameraSeparation: fixed.FIXED_ONE / 32,
	},
}

// Lookup selects the constants for a physics model. It returns None for a
// model that has no constants.
func (t *Table) Lookup(model Model, running bool) opt.Option[Set] {
	switch model {
	case EDITOR, EARTH_GRAVITY:
		if running {
			return opt.Some(t[RUNNING])
		}
		return opt.Some(t[WALKING])
	}

	return opt.None[Set]()
}

// MustLookup is Lookup for callers that cannot continue without constants.
// Simulating with the wrong constants would silently desynchronize every
// peer, so an unknown model is fatal.
func (t *Table) MustLookup(model Model, running bool) Set {
	set := t.Lookup(model, running)
	if opt.IsNone(set) {
		log.Panic().Int16("model", int16(model)).Msg("no physics constants for model")
	}
	return set.Value
}

// Digest identifies the table's exact encoded contents.
func (t *Table) Digest() uint64 {
	return xxhash.Sum64(Pack(t[:]))
}
