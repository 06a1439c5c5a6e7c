package box

import (
	"fmt"

	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/physics"

	opt "github.com/repeale/fp-go/option"
)

// RoomLayout is a room as it is written down in configuration files and
// replays. Coordinates are world units.
type RoomLayout struct {
	Min     [2]int16
	Max     [2]int16
	Floor   int16
	Ceiling int16
	Media   *int16 `json:",omitempty" cbor:",omitempty"`
}

type ObjectLayout struct {
	Location    [3]int16
	Radius      int16
	Height      int16
	Monster     bool
	Permutation int16
}

type Layout struct {
	Rooms   []RoomLayout
	Objects []ObjectLayout
}

func (r RoomLayout) Room() Room {
	room := Room{
		Min:     fixed.WorldPoint2D{X: fixed.WorldDistance(r.Min[0]), Y: fixed.WorldDistance(r.Min[1])},
		Max:     fixed.WorldPoint2D{X: fixed.WorldDistance(r.Max[0]), Y: fixed.WorldDistance(r.Max[1])},
		Floor:   fixed.WorldDistance(r.Floor),
		Ceiling: fixed.WorldDistance(r.Ceiling),
		Media:   opt.None[fixed.WorldDistance](),
	}
	if r.Media != nil {
		room.Media = opt.Some(fixed.WorldDistance(*r.Media))
	}
	return room
}

func (o ObjectLayout) Object() Object {
	object := Object{
		Location: fixed.WorldPoint3D{
			X: fixed.WorldDistance(o.Location[0]),
			Y: fixed.WorldDistance(o.Location[1]),
			Z: fixed.WorldDistance(o.Location[2]),
		},
		Radius:      fixed.WorldDistance(o.Radius),
		Height:      fixed.WorldDistance(o.Height),
		Owner:       physics.OWNED_BY_SCENERY,
		Permutation: o.Permutation,
	}
	if o.Monster {
		object.Owner = physics.OWNED_BY_MONSTER
	}
	return object
}

// Build checks the layout and turns it into a world.
func (l Layout) Build() (*World, error) {
	rooms := make([]Room, len(l.Rooms))
	for i, room := range l.Rooms {
		rooms[i] = room.Room()
	}

	objects := make([]Object, len(l.Objects))
	for i, object := range l.Objects {
		objects[i] = object.Object()
	}

	world, err := New(rooms, objects)
	if err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}
	return world, nil
}
