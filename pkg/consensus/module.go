// Package consensus lets peers running the same session compare digests
// through redis. Each peer writes its digest for a tick into a hash keyed by
// session and tick; any peer can then read the hash back and see whether
// everyone agrees.
package consensus

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/cfoust/lockstep/pkg/physics/actions"
	"github.com/cfoust/lockstep/pkg/physics/constants"
	"github.com/cfoust/lockstep/pkg/session"

	"github.com/go-redis/redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DIGEST_KEY    = "lockstep-digest-%s-%d"
	TABLE_KEY     = "lockstep-table-%s"
	DIGEST_EXPIRY = time.Duration(10 * time.Minute)

	// Recorders compare the tick this far back, giving slower peers time to
	// catch up.
	CHECK_LAG = 30
)

func NewClient(address string, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
}

type Exchange struct {
	client  *redis.Client
	session string
	peer    string
}

func New(client *redis.Client, session string, peer string) *Exchange {
	return &Exchange{
		client:  client,
		session: session,
		peer:    peer,
	}
}

func (e *Exchange) put(ctx context.Context, key string, digest uint64) error {
	pipe := e.client.TxPipeline()
	pipe.HSet(ctx, key, e.peer, strconv.FormatUint(digest, 16))
	pipe.Expire(ctx, key, DIGEST_EXPIRY)
	_, err := pipe.Exec(ctx)
	return err
}

func (e *Exchange) get(ctx context.Context, key string) (map[string]uint64, error) {
	values, err := e.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	digests := make(map[string]uint64, len(values))
	for peer, value := range values {
		digest, err := strconv.ParseUint(value, 16, 64)
		if err != nil {
			return nil, fmt.Errorf("peer %s published invalid digest %q", peer, value)
		}
		digests[peer] = digest
	}
	return digests, nil
}

// Publish shares this peer's digest for a tick.
func (e *Exchange) Publish(ctx context.Context, tick uint32, digest uint64) error {
	return e.put(ctx, fmt.Sprintf(DIGEST_KEY, e.session, tick), digest)
}

// Digests fetches every peer's digest for a tick.
func (e *Exchange) Digests(ctx context.Context, tick uint32) (map[string]uint64, error) {
	return e.get(ctx, fmt.Sprintf(DIGEST_KEY, e.session, tick))
}

// Dissenters lists the peers whose digest differs from the given one.
func Dissenters(digests map[string]uint64, digest uint64) []string {
	var peers []string
	for peer, other := range digests {
		if other != digest {
			peers = append(peers, peer)
		}
	}
	sort.Strings(peers)
	return peers
}

// Compare checks every published digest for a tick against this peer's.
// It returns the peers that disagree.
func (e *Exchange) Compare(ctx context.Context, tick uint32) ([]string, error) {
	digests, err := e.Digests(ctx, tick)
	if err != nil {
		return nil, err
	}

	ours, ok := digests[e.peer]
	if !ok {
		return nil, fmt.Errorf("peer %s has not published tick %d", e.peer, tick)
	}

	return Dissenters(digests, ours), nil
}

// PublishTable shares the constant table this peer is about to simulate
// with.
func (e *Exchange) PublishTable(ctx context.Context, table *constants.Table) error {
	return e.put(ctx, fmt.Sprintf(TABLE_KEY, e.session), table.Digest())
}

// CheckTable fails if any peer has published a different constant table.
// Peers with different tables cannot stay in sync.
func (e *Exchange) CheckTable(ctx context.Context, table *constants.Table) error {
	digests, err := e.get(ctx, fmt.Sprintf(TABLE_KEY, e.session))
	if err != nil {
		return err
	}

	if peers := Dissenters(digests, table.Digest()); len(peers) > 0 {
		return fmt.Errorf("peers %v are using different physics constants", peers)
	}
	return nil
}

type recorder struct {
	ctx context.Context
	*Exchange
}

// Recorder publishes every tick's digest as the session runs and warns
// about peers that disagree on older ticks.
func (e *Exchange) Recorder(ctx context.Context) session.Recorder {
	return &recorder{
		ctx:      ctx,
		Exchange: e,
	}
}

func (r *recorder) Record(tick uint32, words []actions.Flags, digest uint64) error {
	err := r.Publish(r.ctx, tick, digest)
	if err != nil {
		return fmt.Errorf("could not publish digest: %w", err)
	}

	if tick < CHECK_LAG {
		return nil
	}

	checked := tick - CHECK_LAG
	peers, err := r.Compare(r.ctx, checked)
	if err != nil {
		return err
	}

	if len(peers) > 0 {
		log.Warn().
			Uint32("tick", checked).
			Strs("peers", peers).
			Msg("peers disagree")
	}

	return nil
}
