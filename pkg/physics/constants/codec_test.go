package constants

import (
	"testing"

	"github.com/cfoust/lockstep/pkg/fixed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sets builds n distinct constant sets with every field populated.
func sets(n int) []Set {
	result := make([]Set, n)
	for i := range result {
		set := DEFAULT_TABLE[i%int(NUMBER_OF_VARIANTS)]
		set.Acceleration += fixed.Fixed(i)
		set.MaximumElevation = -set.MaximumElevation - fixed.Fixed(i)
		set.HalfCameraSeparation = fixed.Fixed(-1 << 31)
		result[i] = set
	}
	return result
}

func TestRoundTrip(t *testing.T) {
	for n := 1; n <= 9; n++ {
		before := sets(n)

		data := Pack(before)
		require.Len(t, data, n*SIZEOF_SET)

		after, err := Unpack(data, n)
		require.NoError(t, err)
		assert.Equal(t, before, after, "should yield same result for %d sets", n)

		assert.Equal(t, data, Pack(after), "should re-encode to the same bytes")
	}
}

func TestFieldOrder(t *testing.T) {
	set := Set{
		MaximumForwardVelocity: 0x01020304,
		HalfCameraSeparation:   -2,
	}

	data := Pack([]Set{set})
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, data[:4])
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xfe}, data[SIZEOF_SET-4:])
}

func TestUnpackIntegrity(t *testing.T) {
	data := Pack(sets(2))

	_, err := Unpack(data[:len(data)-1], 2)
	assert.Error(t, err, "short stream must fail")

	_, err = Unpack(data, -1)
	assert.Error(t, err)

	// trailing bytes belong to whatever follows the table
	got, err := Unpack(append(data, 0xAA), 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = Unpack(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnpackTable(t *testing.T) {
	table := DEFAULT_TABLE

	after, err := UnpackTable(Pack(table[:]))
	require.NoError(t, err)
	assert.Equal(t, table, after)

	_, err = UnpackTable(Pack(table[:1]))
	assert.Error(t, err)

	_, err = UnpackTable(append(Pack(table[:]), 0))
	assert.Error(t, err)
}
