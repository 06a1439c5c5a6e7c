package consensus

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/cfoust/lockstep/pkg/physics/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDissenters(t *testing.T) {
	assert.Empty(t, Dissenters(nil, 1))
	assert.Empty(t, Dissenters(map[string]uint64{"a": 1, "b": 1}, 1))
	assert.Equal(t, []string{"b", "c"}, Dissenters(map[string]uint64{"a": 1, "c": 3, "b": 2}, 1))
}

func exchanges(t *testing.T) (*Exchange, *Exchange) {
	address := os.Getenv("REDIS_ADDR")
	if address == "" {
		t.Skip("REDIS_ADDR is not set")
	}

	client := NewClient(address, "", 0)
	t.Cleanup(func() { client.Close() })

	session := fmt.Sprintf("test-%d", time.Now().UnixNano())
	return New(client, session, "alpha"), New(client, session, "beta")
}

func TestExchange(t *testing.T) {
	alpha, beta := exchanges(t)
	ctx := context.Background()

	require.NoError(t, alpha.Publish(ctx, 3, 0xabcdef))
	require.NoError(t, beta.Publish(ctx, 3, 0xabcdef))

	digests, err := alpha.Digests(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, map[string]uint64{"alpha": 0xabcdef, "beta": 0xabcdef}, digests)

	peers, err := alpha.Compare(ctx, 3)
	require.NoError(t, err)
	assert.Empty(t, peers)

	require.NoError(t, beta.Publish(ctx, 4, 2))
	require.NoError(t, alpha.Publish(ctx, 4, 1))
	peers, err = alpha.Compare(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, peers)

	_, err = alpha.Compare(ctx, 5)
	assert.Error(t, err)
}

func TestCheckTable(t *testing.T) {
	alpha, beta := exchanges(t)
	ctx := context.Background()

	table := constants.DEFAULT_TABLE
	require.NoError(t, alpha.PublishTable(ctx, &table))
	require.NoError(t, beta.CheckTable(ctx, &table))

	other := table
	other[constants.WALKING].Height++
	assert.Error(t, beta.CheckTable(ctx, &other))
}

func TestRecorder(t *testing.T) {
	alpha, beta := exchanges(t)
	ctx := context.Background()

	a := alpha.Recorder(ctx)
	b := beta.Recorder(ctx)
	for tick := uint32(0); tick <= CHECK_LAG; tick++ {
		require.NoError(t, b.Record(tick, nil, uint64(tick)))
		require.NoError(t, a.Record(tick, nil, uint64(tick)))
	}

	digests, err := alpha.Digests(ctx, CHECK_LAG)
	require.NoError(t, err)
	assert.Len(t, digests, 2)
}
