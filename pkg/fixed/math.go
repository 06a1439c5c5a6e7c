package fixed

type Integer interface {
	~int16 | ~int32 | ~int64 | ~int
}

// Pin clamps x to [lo, hi].
func Pin[T Integer](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Floor keeps x from going below lo.
func Floor[T Integer](x, lo T) T {
	if x < lo {
		return lo
	}
	return x
}

// Ceiling keeps x from going above hi.
func Ceiling[T Integer](x, hi T) T {
	if x > hi {
		return hi
	}
	return x
}

func Abs[T Integer](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func Sgn[T Integer](x T) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func Max[T Integer](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// MulShift multiplies in 64 bits and shifts the product right, truncating
// the result to 32 bits.
func MulShift(a, b int32, shift uint) int32 {
	return int32((int64(a) * int64(b)) >> shift)
}

// ISqrt returns floor(sqrt(n)).
func ISqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}

	var root uint64
	bit := uint64(1) << 62
	for bit > n {
		bit >>= 2
	}

	for bit != 0 {
		if n >= root+bit {
			n -= root + bit
			root = (root >> 1) + bit
		} else {
			root >>= 1
		}
		bit >>= 2
	}

	return root
}
