package physics

import (
	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/physics/actions"
	"github.com/cfoust/lockstep/pkg/physics/constants"

	"github.com/rs/zerolog/log"
)

// Observer sees every player right after it is updated. Observers must not
// modify the player.
type Observer interface {
	Observe(player *Player)
}

// Simulation is the state shared by every player in a session.
type Simulation struct {
	Table      *constants.Table
	Model      constants.Model
	LowGravity bool
	ChaseCam   bool
	World      World
	Notifier   Notifier
	Observers  []Observer
}

// Constants picks the constant set for this tick. Running is decided by the
// action word, before anything (death, for example) rewrites it.
func (s *Simulation) Constants(running bool) constants.Set {
	return s.Table.MustLookup(s.Model, running)
}

func (s *Simulation) notifier() Notifier {
	if s.Notifier == nil {
		return NopNotifier{}
	}
	return s.Notifier
}

type Player struct {
	Index     int16
	Dead      bool
	Variables Variables
	Body      Body
	Shadow    Shadow
}

// NewPlayer places a player at a spawn point and initializes its physics.
func NewPlayer(
	sim *Simulation,
	index int16,
	spawn fixed.WorldPoint3D,
	facing fixed.Angle,
) *Player {
	player := &Player{
		Index: index,
		Body: Body{
			Monster:  index,
			Object:   index,
			Polygon:  sim.World.FindPolygon(spawn.XY()),
			Location: spawn,
			Facing:   fixed.NormalizeAngle(facing),
		},
	}
	player.Initialize(sim)
	return player
}

func (p *Player) resolve(sim *Simulation, c constants.Set, first bool) {
	p.Variables, p.Body, p.Shadow = Resolve(
		sim.World,
		sim.notifier(),
		c,
		p.Variables,
		p.Body,
		ResolveInput{
			Player:   p.Index,
			First:    first,
			Dead:     p.Dead,
			ChaseCam: sim.ChaseCam,
			Support:  p.Shadow.Support,
		},
	)
}

// Initialize resets the player's motion to standing still at the body's
// location. Used on spawn and respawn.
func (p *Player) Initialize(sim *Simulation) {
	c := sim.Constants(false)

	v := Variables{
		Direction:    fixed.IntegerToFixed(int32(p.Body.Facing)),
		Position:     p.Body.Location.ToFixed(),
		ActualHeight: c.Height,
	}
	v.LastPosition = v.Position
	v.LastDirection = v.Direction

	p.Variables = v
	p.Shadow.Support = Support{Current: p.Body.Polygon, Last: NONE}
	p.resolve(sim, c, true)
}

// Update runs one tick for this player.
func (p *Player) Update(sim *Simulation, flags actions.Flags) {
	c := sim.Constants(flags.Has(actions.RUN_DONT_WALK))

	p.Variables = Advance(c, p.Variables, Input{
		Flags:      flags,
		Dead:       p.Dead,
		LowGravity: sim.LowGravity,
		ChaseCam:   sim.ChaseCam,
	})
	p.resolve(sim, c, false)

	for _, observer := range sim.Observers {
		observer.Observe(p)
	}
}

// AdjustForPolygonHeightChange keeps a player standing on a platform when
// the platform moves.
func (p *Player) AdjustForPolygonHeightChange(
	polygon int16,
	oldFloor fixed.WorldDistance,
	newFloor fixed.WorldDistance,
) {
	if p.Shadow.Support.Current != polygon {
		return
	}

	v := &p.Variables
	if fixed.FixedToWorld(v.Position.Z) <= oldFloor {
		v.Position.Z = fixed.WorldToFixed(newFloor)
		v.FloorHeight = v.Position.Z
		if p.Dead {
			v.ExternalVelocity.K = 0
		}
	}
}

// Accelerate applies an impulse, like from an explosion.
func (p *Player) Accelerate(
	sim *Simulation,
	verticalVelocity fixed.WorldDistance,
	direction fixed.Angle,
	velocity fixed.WorldDistance,
) {
	const shift = fixed.TRIG_SHIFT + fixed.WORLD_FRACTIONAL_BITS - fixed.FIXED_FRACTIONAL_BITS

	c := sim.Constants(false)
	external := &p.Variables.ExternalVelocity

	external.K = fixed.Pin(
		external.K+fixed.WorldToFixed(verticalVelocity),
		-c.TerminalVelocity,
		c.TerminalVelocity,
	)
	external.I += fixed.Fixed((int64(fixed.Cos(direction)) * int64(velocity)) >> shift)
	external.J += fixed.Fixed((int64(fixed.Sin(direction)) * int64(velocity)) >> shift)
}

// InstantiateAbsolutePositioning sets the view directly, for head trackers.
func (p *Player) InstantiateAbsolutePositioning(sim *Simulation, facing, elevation fixed.Fixed) {
	quarter := fixed.IntegerToFixed(int32(fixed.QUARTER_CIRCLE))
	if elevation < -quarter || elevation > quarter {
		log.Panic().Msgf("elevation %d out of range", elevation)
	}
	if facing < 0 || facing >= fixed.IntegerToFixed(int32(fixed.FULL_CIRCLE)) {
		log.Panic().Msgf("facing %d out of range", facing)
	}

	c := sim.Constants(false)
	v := &p.Variables
	v.Elevation = fixed.Pin(elevation, -c.MaximumElevation, c.MaximumElevation)
	v.VerticalAngularVelocity = 0
	v.Direction = facing

	p.resolve(sim, c, false)
}

func AbsolutePitchRange(sim *Simulation) (minimum, maximum fixed.Fixed) {
	c := sim.Constants(false)
	return -c.MaximumElevation, c.MaximumElevation
}

// ForwardVelocityScale is how fast the player moved along their heading last
// tick, as a fraction of running speed. Roughly in [-FIXED_ONE, FIXED_ONE].
func (p *Player) ForwardVelocityScale(sim *Simulation) fixed.Fixed {
	c := sim.Constants(true)
	if c.MaximumForwardVelocity == 0 {
		return 0
	}

	v := &p.Variables
	heading := v.Heading()
	dx := int64(v.Position.X - v.LastPosition.X)
	dy := int64(v.Position.Y - v.LastPosition.Y)

	along := (dx*int64(fixed.Cos(heading)) + dy*int64(fixed.Sin(heading))) >> fixed.TRIG_SHIFT
	return fixed.Fixed((along << fixed.FIXED_FRACTIONAL_BITS) / int64(c.MaximumForwardVelocity))
}

type Eye struct {
	Location fixed.WorldPoint3D
	Polygon  int16
	Facing   fixed.Angle
}

func (p *Player) eye(sim *Simulation, c constants.Set, offset fixed.Angle) Eye {
	theta := fixed.NormalizeAngle(p.Shadow.Facing + offset)
	position := p.Variables.Position
	separation := int64(c.HalfCameraSeparation)

	eye := Eye{
		Location: fixed.WorldPoint3D{
			X: fixed.FixedToWorld(position.X + fixed.Fixed((separation*int64(fixed.Cos(theta)))>>fixed.TRIG_SHIFT)),
			Y: fixed.FixedToWorld(position.Y + fixed.Fixed((separation*int64(fixed.Sin(theta)))>>fixed.TRIG_SHIFT)),
			Z: p.Shadow.CameraLocation.Z,
		},
	}
	eye.Polygon = sim.World.FindPolygon(eye.Location.XY())
	return eye
}

// BinocularOrigins places two cameras either side of the player's eye, each
// turned inward by one angle unit.
func (p *Player) BinocularOrigins(sim *Simulation) (left Eye, right Eye) {
	c := sim.Constants(false)

	right = p.eye(sim, c, fixed.QUARTER_CIRCLE)
	right.Facing = fixed.NormalizeAngle(p.Shadow.Facing - 1)

	left = p.eye(sim, c, -fixed.QUARTER_CIRCLE)
	left.Facing = fixed.NormalizeAngle(p.Shadow.Facing + 1)

	return left, right
}

func (p *Player) SoundLocation() (fixed.WorldPoint3D, int16) {
	return p.Shadow.SoundLocation, p.Shadow.SoundPolygon
}
