package physics

import (
	"github.com/cfoust/lockstep/pkg/fixed"

	opt "github.com/repeale/fp-go/option"
)

// NONE is the index of no polygon, object or monster.
const NONE int16 = -1

// Body is the map object standing in for a player: the legs, which collision
// works with.
type Body struct {
	Monster  int16
	Object   int16
	Polygon  int16
	Location fixed.WorldPoint3D
	Facing   fixed.Angle
}

// Shape is the cylinder a body occupies when testing against other objects.
type Shape struct {
	Radius fixed.WorldDistance
	Height fixed.WorldDistance
}

type WallQuery struct {
	Polygon   int16
	From      fixed.WorldPoint3D
	To        fixed.WorldPoint3D
	Clearance fixed.WorldDistance
	Height    fixed.WorldDistance
}

type WallResult struct {
	// Destination after being pushed out of any walls. Only X and Y move.
	Destination       fixed.WorldPoint3D
	Clipped           bool
	FloorHeight       fixed.WorldDistance
	CeilingHeight     fixed.WorldDistance
	SupportingPolygon int16
}

type ObjectOwner uint8

const (
	OWNED_BY_SCENERY ObjectOwner = iota
	OWNED_BY_MONSTER
)

type Obstruction struct {
	Object int16
	Owner  ObjectOwner
	// For monsters, the monster index.
	Permutation int16
}

type MoveResult struct {
	Obstruction opt.Option[Obstruction]
	// Highest top of any object the body is standing on.
	ObjectFloor opt.Option[fixed.WorldDistance]
}

// World is the map as the physics sees it. Implementations must be
// deterministic: the same queries in the same order give the same answers on
// every peer.
type World interface {
	KeepOutOfWalls(query WallQuery) WallResult
	LegalMove(body Body, shape Shape, to fixed.WorldPoint3D) MoveResult
	// TranslateBody moves the body to a new location, following it across
	// polygon boundaries. It reports whether the body entered a different
	// polygon, and may adjust the location if the move was not possible.
	TranslateBody(body Body, to fixed.WorldPoint3D) (Body, bool)
	// MediaHeight is the surface of the liquid in a polygon, if it has any.
	MediaHeight(polygon int16) opt.Option[fixed.WorldDistance]
	FindPolygon(point fixed.WorldPoint2D) int16
}

// Notifier receives the side effects of moving a player. None of them feed
// back into the simulation.
type Notifier interface {
	ChangedPolygon(from, to int16, player int16)
	BumpMonster(aggressor, victim int16)
	MonsterMoved(monster, oldPolygon int16)
}

type NopNotifier struct{}

func (NopNotifier) ChangedPolygon(from, to int16, player int16) {}
func (NopNotifier) BumpMonster(aggressor, victim int16)         {}
func (NopNotifier) MonsterMoved(monster, oldPolygon int16)      {}

var _ Notifier = NopNotifier{}

// Support tracks the polygon the player was standing on.
type Support struct {
	Current int16
	Last    int16
}

// Shadow is the world-facing copy of a player's position that renderers,
// sound and other game systems read.
type Shadow struct {
	Location       fixed.WorldPoint3D
	CameraLocation fixed.WorldPoint3D
	CameraPolygon  int16
	Facing         fixed.Angle
	Elevation      fixed.Angle
	SoundLocation  fixed.WorldPoint3D
	SoundPolygon   int16
	Support        Support
}
