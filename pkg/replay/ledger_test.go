package replay

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger(t *testing.T) {
	ctx := context.Background()

	ledger, err := OpenLedger(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	defer ledger.Close()

	hash := FormatHash(0xdeadbeef)
	assert.Equal(t, "00000000deadbeef", hash)

	runs, err := ledger.Runs(ctx, hash)
	require.NoError(t, err)
	assert.Empty(t, runs)

	agree, err := ledger.Agree(ctx, hash)
	require.NoError(t, err)
	assert.True(t, agree)

	require.NoError(t, ledger.Record(ctx, &Run{
		Replay: hash,
		Host:   "alpha",
		Ticks:  80,
		Digest: FormatHash(1),
		Passed: true,
	}))
	require.NoError(t, ledger.Record(ctx, &Run{
		Replay: hash,
		Host:   "beta",
		Ticks:  80,
		Digest: FormatHash(1),
		Passed: true,
	}))
	require.NoError(t, ledger.Record(ctx, &Run{
		Replay: FormatHash(7),
		Host:   "alpha",
	}))

	runs, err = ledger.Runs(ctx, hash)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "alpha", runs[0].Host)
	assert.Equal(t, "beta", runs[1].Host)
	assert.False(t, runs[0].Created.IsZero())

	agree, err = ledger.Agree(ctx, hash)
	require.NoError(t, err)
	assert.True(t, agree)

	require.NoError(t, ledger.Record(ctx, &Run{
		Replay:   hash,
		Host:     "gamma",
		Ticks:    12,
		Digest:   FormatHash(2),
		Mismatch: 12,
	}))

	agree, err = ledger.Agree(ctx, hash)
	require.NoError(t, err)
	assert.False(t, agree)
}
