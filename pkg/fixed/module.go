// Package fixed implements the integer arithmetic used by the simulation.
// Nothing in here touches floating point, so results are identical on every
// machine that runs a session.
package fixed

// Fixed is a signed 16.16 fixed-point number.
type Fixed int32

// WorldDistance is a distance in world units (WORLD_ONE per map unit).
type WorldDistance int32

// Angle is an integral angle, NUMBER_OF_ANGLES to the circle.
type Angle int32

const (
	FIXED_FRACTIONAL_BITS = 16
	FIXED_ONE             = Fixed(1 << FIXED_FRACTIONAL_BITS)
	FIXED_ONE_HALF        = Fixed(1 << (FIXED_FRACTIONAL_BITS - 1))

	WORLD_FRACTIONAL_BITS = 10
	WORLD_ONE             = WorldDistance(1 << WORLD_FRACTIONAL_BITS)
	WORLD_ONE_HALF        = WORLD_ONE / 2
	WORLD_ONE_FOURTH      = WORLD_ONE / 4

	ANGULAR_BITS     = 9
	NUMBER_OF_ANGLES = 1 << ANGULAR_BITS
	FULL_CIRCLE      = Angle(NUMBER_OF_ANGLES)
	HALF_CIRCLE      = FULL_CIRCLE / 2
	QUARTER_CIRCLE   = FULL_CIRCLE / 4

	TRIG_SHIFT     = 14
	TRIG_MAGNITUDE = 1 << TRIG_SHIFT
)

const worldToFixedShift = FIXED_FRACTIONAL_BITS - WORLD_FRACTIONAL_BITS

type Point3D struct {
	X, Y, Z Fixed
}

type Vector3D struct {
	I, J, K Fixed
}

func (v Vector3D) IsZero() bool {
	return v.I == 0 && v.J == 0 && v.K == 0
}

type WorldPoint2D struct {
	X, Y WorldDistance
}

type WorldPoint3D struct {
	X, Y, Z WorldDistance
}

func (p WorldPoint3D) XY() WorldPoint2D {
	return WorldPoint2D{X: p.X, Y: p.Y}
}

func WorldToFixed(w WorldDistance) Fixed {
	return Fixed(w) << worldToFixedShift
}

func FixedToWorld(f Fixed) WorldDistance {
	return WorldDistance(f >> worldToFixedShift)
}

func IntegerToFixed(i int32) Fixed {
	return Fixed(i << FIXED_FRACTIONAL_BITS)
}

// IntegralPart drops the fractional bits, rounding toward negative infinity.
func IntegralPart(f Fixed) int32 {
	return int32(f >> FIXED_FRACTIONAL_BITS)
}

func NormalizeAngle(a Angle) Angle {
	return a & (FULL_CIRCLE - 1)
}

// FixedAngle returns the integral angle of a fixed-point angle, normalized.
func FixedAngle(f Fixed) Angle {
	return NormalizeAngle(Angle(IntegralPart(f)))
}

func (p Point3D) ToWorld() WorldPoint3D {
	return WorldPoint3D{
		X: FixedToWorld(p.X),
		Y: FixedToWorld(p.Y),
		Z: FixedToWorld(p.Z),
	}
}

func (p WorldPoint3D) ToFixed() Point3D {
	return Point3D{
		X: WorldToFixed(p.X),
		Y: WorldToFixed(p.Y),
		Z: WorldToFixed(p.Z),
	}
}
