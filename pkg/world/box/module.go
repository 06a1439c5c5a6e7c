// Package box is a world made of axis-aligned rectangular rooms and round
// solid objects. It is small enough to reason about in tests and is what the
// CLI simulates in.
package box

import (
	"fmt"

	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/physics"

	opt "github.com/repeale/fp-go/option"
)

// Highest ledge a body can walk up onto.
const MAXIMUM_STEP = fixed.WORLD_ONE / 3

type Room struct {
	Min     fixed.WorldPoint2D
	Max     fixed.WorldPoint2D
	Floor   fixed.WorldDistance
	Ceiling fixed.WorldDistance
	Media   opt.Option[fixed.WorldDistance]
}

func (r *Room) Contains(point fixed.WorldPoint2D) bool {
	return point.X >= r.Min.X && point.X < r.Max.X &&
		point.Y >= r.Min.Y && point.Y < r.Max.Y
}

type Object struct {
	Location fixed.WorldPoint3D
	Radius   fixed.WorldDistance
	Height   fixed.WorldDistance
	Owner    physics.ObjectOwner
	// Monster index for monsters.
	Permutation int16
}

func (o *Object) Top() fixed.WorldDistance {
	return o.Location.Z + o.Height
}

type World struct {
	rooms   []Room
	objects []Object
	bounds  Room
}

var _ physics.World = (*World)(nil)

func New(rooms []Room, objects []Object) (*World, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("world has no rooms")
	}

	bounds := rooms[0]
	for i, room := range rooms {
		if room.Min.X >= room.Max.X || room.Min.Y >= room.Max.Y {
			return nil, fmt.Errorf("room %d is empty", i)
		}
		if room.Floor >= room.Ceiling {
			return nil, fmt.Errorf("room %d has its ceiling below its floor", i)
		}

		bounds.Min.X = min(bounds.Min.X, room.Min.X)
		bounds.Min.Y = min(bounds.Min.Y, room.Min.Y)
		bounds.Max.X = max(bounds.Max.X, room.Max.X)
		bounds.Max.Y = max(bounds.Max.Y, room.Max.Y)
	}

	for i, object := range objects {
		if object.Radius <= 0 || object.Height <= 0 {
			return nil, fmt.Errorf("object %d has no size", i)
		}
	}

	return &World{
		rooms:   append([]Room(nil), rooms...),
		objects: append([]Object(nil), objects...),
		bounds:  bounds,
	}, nil
}

func (w *World) Room(polygon int16) opt.Option[Room] {
	if polygon < 0 || int(polygon) >= len(w.rooms) {
		return opt.None[Room]()
	}
	return opt.Some(w.rooms[polygon])
}

// MoveFloor raises or lowers a room's floor, like a platform, and returns
// the old height.
func (w *World) MoveFloor(polygon int16, floor fixed.WorldDistance) (fixed.WorldDistance, error) {
	if polygon < 0 || int(polygon) >= len(w.rooms) {
		return 0, fmt.Errorf("no such room %d", polygon)
	}

	room := &w.rooms[polygon]
	if floor >= room.Ceiling {
		return 0, fmt.Errorf("floor %d would be above the ceiling of room %d", floor, polygon)
	}

	old := room.Floor
	room.Floor = floor
	return old, nil
}

func (w *World) FindPolygon(point fixed.WorldPoint2D) int16 {
	for i := range w.rooms {
		if w.rooms[i].Contains(point) {
			return int16(i)
		}
	}
	return physics.NONE
}

func (w *World) MediaHeight(polygon int16) opt.Option[fixed.WorldDistance] {
	room := w.Room(polygon)
	if opt.IsNone(room) {
		return opt.None[fixed.WorldDistance]()
	}
	return room.Value.Media
}

// passable reports whether a body of the given height standing at z can
// move into the room.
func passable(room *Room, z, height fixed.WorldDistance) bool {
	return room.Floor-z <= MAXIMUM_STEP && room.Ceiling-room.Floor >= height
}

// KeepOutOfWalls keeps the body inside the outer bounds of the rooms with
// the requested clearance. A move into a gap between rooms, onto a ledge that
// is too high or into a room too low to stand in is refused outright.
func (w *World) KeepOutOfWalls(query physics.WallQuery) physics.WallResult {
	result := physics.WallResult{
		Destination:       query.To,
		SupportingPolygon: query.Polygon,
	}

	to := &result.Destination
	clamped := fixed.WorldPoint2D{
		X: fixed.Pin(to.X, w.bounds.Min.X+query.Clearance, w.bounds.Max.X-query.Clearance-1),
		Y: fixed.Pin(to.Y, w.bounds.Min.Y+query.Clearance, w.bounds.Max.Y-query.Clearance-1),
	}
	if clamped != to.XY() {
		to.X, to.Y = clamped.X, clamped.Y
		result.Clipped = true
	}

	polygon := w.FindPolygon(to.XY())
	if polygon != query.Polygon {
		if polygon == physics.NONE || !passable(&w.rooms[polygon], query.To.Z, query.Height) {
			to.X, to.Y = query.From.X, query.From.Y
			result.Clipped = true
			polygon = query.Polygon
		}
	}

	if room := w.Room(polygon); !opt.IsNone(room) {
		result.FloorHeight = room.Value.Floor
		result.CeilingHeight = room.Value.Ceiling
		result.SupportingPolygon = polygon
	}

	return result
}

func distanceSquared(a, b fixed.WorldPoint2D) int64 {
	dx, dy := int64(a.X-b.X), int64(a.Y-b.Y)
	return dx*dx + dy*dy
}

// LegalMove checks the move against every solid object, in order. Objects
// the body is above hold it up instead of blocking it, objects it is above or
// below don't touch it at all. A body that already overlaps an object may
// still move away from it.
func (w *World) LegalMove(body physics.Body, shape physics.Shape, to fixed.WorldPoint3D) physics.MoveResult {
	result := physics.MoveResult{
		Obstruction: opt.None[physics.Obstruction](),
		ObjectFloor: opt.None[fixed.WorldDistance](),
	}

	for i := range w.objects {
		object := &w.objects[i]

		reach := int64(shape.Radius + object.Radius)
		distance := distanceSquared(to.XY(), object.Location.XY())
		if distance >= reach*reach {
			continue
		}

		// standing on top of it
		if to.Z >= object.Top()-MAXIMUM_STEP {
			if opt.IsNone(result.ObjectFloor) || object.Top() > result.ObjectFloor.Value {
				result.ObjectFloor = opt.Some(object.Top())
			}
			continue
		}

		// passing underneath it
		if to.Z+shape.Height <= object.Location.Z {
			continue
		}

		if distance >= distanceSquared(body.Location.XY(), object.Location.XY()) {
			continue
		}

		if opt.IsNone(result.Obstruction) {
			result.Obstruction = opt.Some(physics.Obstruction{
				Object:      int16(i),
				Owner:       object.Owner,
				Permutation: object.Permutation,
			})
		}
	}

	return result
}

// TranslateBody moves the body, reporting whether it changed rooms. A
// destination outside every room leaves the body where it was.
func (w *World) TranslateBody(body physics.Body, to fixed.WorldPoint3D) (physics.Body, bool) {
	polygon := w.FindPolygon(to.XY())
	if polygon == physics.NONE {
		body.Location.Z = to.Z
		return body, true
	}

	crossed := polygon != body.Polygon
	body.Polygon = polygon
	body.Location = to
	return body, crossed
}
