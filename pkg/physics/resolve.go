package physics

import (
	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/physics/constants"

	opt "github.com/repeale/fp-go/option"
)

// How far the player's center is kept from walls.
const WALL_CLEARANCE = fixed.WORLD_ONE / 3

type ResolveInput struct {
	Player int16
	// The first resolve after a spawn doesn't report a polygon change.
	First    bool
	Dead     bool
	ChaseCam bool
	Support  Support
}

// StepHeight is the camera bob for the current step phase. Half a step cycle
// covers half a sine wave.
func StepHeight(c constants.Set, v Variables, chaseCam bool) fixed.Fixed {
	if chaseCam {
		return 0
	}

	phase := fixed.Angle(v.StepPhase >> (fixed.FIXED_FRACTIONAL_BITS - fixed.ANGULAR_BITS + 1))
	bob := (int64(c.StepAmplitude) * int64(fixed.Sin(phase))) >> fixed.TRIG_SHIFT
	return fixed.Fixed((bob * int64(v.StepAmplitude)) >> fixed.FIXED_FRACTIONAL_BITS)
}

// Resolve reconciles the position proposed by Advance with the world. The
// proposal is pushed out of walls and solid objects, the body is moved to the
// result and the player's shadow is rebuilt. The fixed-point position is only
// overwritten when the move was clipped, so sub-unit precision survives
// unobstructed movement.
func Resolve(
	w World,
	n Notifier,
	c constants.Set,
	v Variables,
	body Body,
	in ResolveInput,
) (Variables, Body, Shadow) {
	oldPolygon := body.Polygon
	location := v.Position.ToWorld()

	// a corpse sits below the floor, but walls are checked at standing height
	dropDead := fixed.FixedToWorld(DropDeadHeight(in.ChaseCam))
	if in.Dead {
		location.Z += dropDead
	}

	support := in.Support
	if !in.First && support.Last != support.Current {
		n.ChangedPolygon(support.Last, support.Current, in.Player)
	}
	if in.First {
		support.Last = NONE
	} else {
		support.Last = support.Current
	}

	walls := w.KeepOutOfWalls(WallQuery{
		Polygon:   body.Polygon,
		From:      body.Location,
		To:        location,
		Clearance: WALL_CLEARANCE,
		Height:    fixed.FixedToWorld(v.ActualHeight),
	})
	location.X, location.Y = walls.Destination.X, walls.Destination.Y
	clipped := walls.Clipped
	support.Current = walls.SupportingPolygon

	if in.Dead {
		location.Z -= dropDead
	}

	shape := Shape{
		Radius: fixed.FixedToWorld(c.Radius),
		Height: fixed.FixedToWorld(v.ActualHeight),
	}
	move := w.LegalMove(body, shape, location)
	if !opt.IsNone(move.Obstruction) {
		obstruction := move.Obstruction.Value
		if obstruction.Owner == OWNED_BY_MONSTER {
			n.BumpMonster(body.Monster, obstruction.Permutation)
		}

		// solid objects reject the whole horizontal move
		location.X, location.Y = body.Location.X, body.Location.Y
		clipped = true
	}

	body, crossed := w.TranslateBody(body, location)
	location = body.Location
	if crossed {
		// the translation couldn't follow us and put us somewhere else
		if body.Polygon == oldPolygon {
			clipped = true
		}
		n.MonsterMoved(body.Monster, oldPolygon)
	}

	if clipped {
		v.Position = location.ToFixed()
	}

	var shadow Shadow

	step := StepHeight(c, v, in.ChaseCam)
	shadow.CameraLocation = location
	if in.Dead && location.Z < walls.FloorHeight {
		location.Z = walls.FloorHeight
	}
	shadow.Location = location
	shadow.CameraLocation.Z += fixed.FixedToWorld(step + v.ActualHeight - c.CameraHeight)
	shadow.CameraPolygon = body.Polygon

	shadow.Facing = fixed.FixedAngle(v.Direction + v.HeadDirection)
	shadow.Elevation = fixed.FixedAngle(v.Elevation)
	body.Location.Z = location.Z
	body.Facing = v.Heading()

	floor := walls.FloorHeight
	if !opt.IsNone(move.ObjectFloor) && move.ObjectFloor.Value > floor {
		floor = move.ObjectFloor.Value
	}
	v.FloorHeight = fixed.WorldToFixed(floor)
	v.CeilingHeight = fixed.WorldToFixed(walls.CeilingHeight)

	var feetBelow, headBelow bool
	if media := w.MediaHeight(body.Polygon); !opt.IsNone(media) {
		feetBelow = shadow.Location.Z < media.Value
		headBelow = shadow.CameraLocation.Z < media.Value
	}
	v.Flags = v.Flags.
		With(FEET_BELOW_MEDIA, feetBelow).
		With(HEAD_BELOW_MEDIA, headBelow)

	shadow.SoundLocation = shadow.CameraLocation
	shadow.SoundPolygon = shadow.CameraPolygon
	shadow.Support = support

	return v, body, shadow
}
