package constants

import (
	"fmt"

	"github.com/cfoust/lockstep/pkg/io"
)

// SIZEOF_SET is the width of one packed Set: 26 big-endian 32-bit fields.
const SIZEOF_SET = 104

func init() {
	size, err := io.SizeOf(Set{})
	if err != nil || size != SIZEOF_SET {
		panic(fmt.Sprintf("constant set packs to %d bytes, expected %d (%v)", size, SIZEOF_SET, err))
	}
}

// Unpack reads count constant sets from the front of data. Any mismatch
// between the bytes consumed and count*SIZEOF_SET is an error, and no
// partial result is returned.
func Unpack(data []byte, count int) ([]Set, error) {
	if count < 0 {
		return nil, fmt.Errorf("invalid constant set count %d", count)
	}

	expected := count * SIZEOF_SET
	if len(data) < expected {
		return nil, fmt.Errorf(
			"constant table too short: have %d bytes, need %d for %d sets",
			len(data),
			expected,
			count,
		)
	}

	p := io.Buffer(data[:expected])
	sets := make([]Set, count)
	for i := range sets {
		err := p.Get(&sets[i])
		if err != nil {
			return nil, fmt.Errorf("could not unpack constant set %d: %w", i, err)
		}
	}

	if consumed := expected - len(p); consumed != expected {
		return nil, fmt.Errorf("consumed %d bytes unpacking constants, expected %d", consumed, expected)
	}

	return sets, nil
}

// Pack writes every set in order.
func Pack(sets []Set) []byte {
	p := make(io.Buffer, 0, len(sets)*SIZEOF_SET)
	for _, set := range sets {
		// Set contains only fixed-width fields, which init verified
		if err := p.Put(set); err != nil {
			panic(err)
		}
	}

	if len(p) != len(sets)*SIZEOF_SET {
		panic(fmt.Sprintf("packed %d bytes of constants, expected %d", len(p), len(sets)*SIZEOF_SET))
	}

	return p
}

// UnpackTable decodes a complete table. The stream must hold exactly one set
// per variant.
func UnpackTable(data []byte) (Table, error) {
	var table Table

	if len(data) != int(NUMBER_OF_VARIANTS)*SIZEOF_SET {
		return table, fmt.Errorf(
			"constant table is %d bytes, expected %d",
			len(data),
			int(NUMBER_OF_VARIANTS)*SIZEOF_SET,
		)
	}

	sets, err := Unpack(data, int(NUMBER_OF_VARIANTS))
	if err != nil {
		return table, err
	}

	copy(table[:], sets)
	return table, nil
}
