package fixed

//go:generate go run ../../cmd/gentrig -o trig_table.go

// Sin returns TRIG_MAGNITUDE*sin(theta).
func Sin(theta Angle) int32 {
	return SINE_TABLE[NormalizeAngle(theta)]
}

// Cos returns TRIG_MAGNITUDE*cos(theta).
func Cos(theta Angle) int32 {
	return COSINE_TABLE[NormalizeAngle(theta)]
}

// Rotate turns (x, y) by theta. Products are scaled down by TRIG_SHIFT.
func Rotate(x, y Fixed, theta Angle) (Fixed, Fixed) {
	cosine, sine := int64(Cos(theta)), int64(Sin(theta))
	rx := (int64(x)*cosine - int64(y)*sine) >> TRIG_SHIFT
	ry := (int64(x)*sine + int64(y)*cosine) >> TRIG_SHIFT
	return Fixed(rx), Fixed(ry)
}
