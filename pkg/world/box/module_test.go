package box

import (
	"testing"

	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/physics"

	opt "github.com/repeale/fp-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(minX, maxX fixed.WorldDistance, floor fixed.WorldDistance) Room {
	return Room{
		Min:     fixed.WorldPoint2D{X: minX, Y: 0},
		Max:     fixed.WorldPoint2D{X: maxX, Y: 1024},
		Floor:   floor,
		Ceiling: floor + 2048,
		Media:   opt.None[fixed.WorldDistance](),
	}
}

func TestNew(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)

	empty := square(0, 1024, 0)
	empty.Max.X = 0
	_, err = New([]Room{empty}, nil)
	assert.Error(t, err)

	upsideDown := square(0, 1024, 0)
	upsideDown.Ceiling = -1
	_, err = New([]Room{upsideDown}, nil)
	assert.Error(t, err)

	_, err = New([]Room{square(0, 1024, 0)}, []Object{{}})
	assert.Error(t, err)
}

func TestFindPolygon(t *testing.T) {
	w, err := New([]Room{square(0, 1024, 0), square(1024, 2048, 0)}, nil)
	require.NoError(t, err)

	assert.Equal(t, int16(0), w.FindPolygon(fixed.WorldPoint2D{X: 0, Y: 0}))
	assert.Equal(t, int16(1), w.FindPolygon(fixed.WorldPoint2D{X: 1024, Y: 512}))
	assert.Equal(t, physics.NONE, w.FindPolygon(fixed.WorldPoint2D{X: 2048, Y: 512}))
	assert.Equal(t, physics.NONE, w.FindPolygon(fixed.WorldPoint2D{X: 512, Y: -1}))
}

func TestMediaHeight(t *testing.T) {
	wet := square(0, 1024, 0)
	wet.Media = opt.Some(fixed.WorldDistance(100))

	w, err := New([]Room{wet}, nil)
	require.NoError(t, err)

	media := w.MediaHeight(0)
	require.False(t, opt.IsNone(media))
	assert.Equal(t, fixed.WorldDistance(100), media.Value)
	assert.True(t, opt.IsNone(w.MediaHeight(1)))
	assert.True(t, opt.IsNone(w.MediaHeight(physics.NONE)))
}

func TestKeepOutOfWalls(t *testing.T) {
	w, err := New([]Room{square(0, 1024, 0), square(1024, 2048, 512)}, nil)
	require.NoError(t, err)

	query := physics.WallQuery{
		Polygon:   0,
		From:      fixed.WorldPoint3D{X: 512, Y: 512},
		To:        fixed.WorldPoint3D{X: 600, Y: 512},
		Clearance: 100,
		Height:    800,
	}

	result := w.KeepOutOfWalls(query)
	assert.False(t, result.Clipped)
	assert.Equal(t, query.To, result.Destination)
	assert.Equal(t, int16(0), result.SupportingPolygon)
	assert.Equal(t, fixed.WorldDistance(2048), result.CeilingHeight)

	// pushed off the outer wall
	query.To = fixed.WorldPoint3D{X: 512, Y: 1000}
	result = w.KeepOutOfWalls(query)
	assert.True(t, result.Clipped)
	assert.Equal(t, fixed.WorldDistance(1024-100-1), result.Destination.Y)

	// the next room's floor is too high to step onto
	query.To = fixed.WorldPoint3D{X: 1100, Y: 512}
	result = w.KeepOutOfWalls(query)
	assert.True(t, result.Clipped)
	assert.Equal(t, query.From.XY(), result.Destination.XY())
	assert.Equal(t, int16(0), result.SupportingPolygon)

	// unless we're already up there
	query.To.Z = 400
	result = w.KeepOutOfWalls(query)
	assert.False(t, result.Clipped)
	assert.Equal(t, int16(1), result.SupportingPolygon)
	assert.Equal(t, fixed.WorldDistance(512), result.FloorHeight)
}

func TestLegalMove(t *testing.T) {
	objects := []Object{
		{Location: fixed.WorldPoint3D{X: 500, Y: 500}, Radius: 50, Height: 100},
		{Location: fixed.WorldPoint3D{X: 800, Y: 500, Z: 1000}, Radius: 50, Height: 100, Owner: physics.OWNED_BY_MONSTER, Permutation: 3},
	}
	w, err := New([]Room{square(0, 1024, 0)}, objects)
	require.NoError(t, err)

	body := physics.Body{Location: fixed.WorldPoint3D{X: 300, Y: 500}}
	shape := physics.Shape{Radius: 100, Height: 800}

	// clear
	result := w.LegalMove(body, shape, fixed.WorldPoint3D{X: 340, Y: 500})
	assert.True(t, opt.IsNone(result.Obstruction))
	assert.True(t, opt.IsNone(result.ObjectFloor))

	// low enough to step onto
	result = w.LegalMove(body, shape, fixed.WorldPoint3D{X: 400, Y: 500})
	assert.True(t, opt.IsNone(result.Obstruction))
	require.False(t, opt.IsNone(result.ObjectFloor))
	assert.Equal(t, fixed.WorldDistance(100), result.ObjectFloor.Value)

	// a tall object blocks
	tall, err := New([]Room{square(0, 1024, 0)}, []Object{
		{Location: fixed.WorldPoint3D{X: 500, Y: 500}, Radius: 50, Height: 1000},
	})
	require.NoError(t, err)
	result = tall.LegalMove(body, shape, fixed.WorldPoint3D{X: 400, Y: 500})
	require.False(t, opt.IsNone(result.Obstruction))
	assert.Equal(t, int16(0), result.Obstruction.Value.Object)

	// but moving away from it doesn't
	inside := physics.Body{Location: fixed.WorldPoint3D{X: 420, Y: 500}}
	result = tall.LegalMove(inside, shape, fixed.WorldPoint3D{X: 410, Y: 500})
	assert.True(t, opt.IsNone(result.Obstruction))

	// walking under the floating monster
	result = w.LegalMove(body, shape, fixed.WorldPoint3D{X: 750, Y: 500})
	assert.True(t, opt.IsNone(result.Obstruction))

	// and into it
	result = w.LegalMove(body, physics.Shape{Radius: 100, Height: 1500}, fixed.WorldPoint3D{X: 750, Y: 500})
	require.False(t, opt.IsNone(result.Obstruction))
	assert.Equal(t, physics.OWNED_BY_MONSTER, result.Obstruction.Value.Owner)
	assert.Equal(t, int16(3), result.Obstruction.Value.Permutation)
}

func TestTranslateBody(t *testing.T) {
	w, err := New([]Room{square(0, 1024, 0), square(1024, 2048, 0)}, nil)
	require.NoError(t, err)

	body := physics.Body{Polygon: 0, Location: fixed.WorldPoint3D{X: 1000, Y: 500}}

	moved, crossed := w.TranslateBody(body, fixed.WorldPoint3D{X: 1010, Y: 500, Z: 5})
	assert.False(t, crossed)
	assert.Equal(t, fixed.WorldPoint3D{X: 1010, Y: 500, Z: 5}, moved.Location)

	moved, crossed = w.TranslateBody(body, fixed.WorldPoint3D{X: 1030, Y: 500})
	assert.True(t, crossed)
	assert.Equal(t, int16(1), moved.Polygon)

	// nowhere to go
	moved, crossed = w.TranslateBody(body, fixed.WorldPoint3D{X: 1030, Y: 2000, Z: 7})
	assert.True(t, crossed)
	assert.Equal(t, int16(0), moved.Polygon)
	assert.Equal(t, fixed.WorldPoint3D{X: 1000, Y: 500, Z: 7}, moved.Location)
}

func TestMoveFloor(t *testing.T) {
	w, err := New([]Room{square(0, 1024, 0)}, nil)
	require.NoError(t, err)

	old, err := w.MoveFloor(0, 256)
	require.NoError(t, err)
	assert.Equal(t, fixed.WorldDistance(0), old)
	assert.Equal(t, fixed.WorldDistance(256), w.Room(0).Value.Floor)

	_, err = w.MoveFloor(0, 4096)
	assert.Error(t, err)
	_, err = w.MoveFloor(5, 0)
	assert.Error(t, err)
}

func TestLayout(t *testing.T) {
	media := int16(128)
	w, err := Layout{
		Rooms: []RoomLayout{
			{Min: [2]int16{0, 0}, Max: [2]int16{1024, 1024}, Floor: 0, Ceiling: 2048},
			{Min: [2]int16{1024, 0}, Max: [2]int16{2048, 1024}, Floor: -256, Ceiling: 1024, Media: &media},
		},
		Objects: []ObjectLayout{
			{Location: [3]int16{512, 512, 0}, Radius: 64, Height: 512, Monster: true, Permutation: 2},
		},
	}.Build()
	require.NoError(t, err)

	assert.True(t, opt.IsNone(w.MediaHeight(0)))
	require.False(t, opt.IsNone(w.MediaHeight(1)))
	assert.Equal(t, fixed.WorldDistance(128), w.MediaHeight(1).Value)
	assert.Equal(t, fixed.WorldDistance(-256), w.Room(1).Value.Floor)

	result := w.LegalMove(
		physics.Body{Location: fixed.WorldPoint3D{X: 400, Y: 512}},
		physics.Shape{Radius: 256, Height: 820},
		fixed.WorldPoint3D{X: 420, Y: 512},
	)
	require.False(t, opt.IsNone(result.Obstruction))
	assert.Equal(t, physics.OWNED_BY_MONSTER, result.Obstruction.Value.Owner)
	assert.Equal(t, int16(2), result.Obstruction.Value.Permutation)

	_, err = Layout{}.Build()
	assert.Error(t, err)
}
