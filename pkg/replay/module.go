// Package replay records sessions so they can be re-simulated elsewhere.
// A replay carries everything the simulation depends on: the constant
// table, the world, spawns and every action word, plus the digest each tick
// produced so a re-simulation can point at the first tick that differs.
package replay

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/cfoust/lockstep/pkg/physics"
	"github.com/cfoust/lockstep/pkg/physics/actions"
	"github.com/cfoust/lockstep/pkg/physics/constants"
	"github.com/cfoust/lockstep/pkg/session"
	"github.com/cfoust/lockstep/pkg/world/box"

	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
)

const VERSION = 1

var (
	encoder *zstd.Encoder
	decoder *zstd.Decoder
)

func init() {
	var err error
	encoder, err = zstd.NewWriter(nil)
	if err != nil {
		log.Panic().Err(err).Msg("could not create zstd encoder")
	}
	decoder, err = zstd.NewReader(nil)
	if err != nil {
		log.Panic().Err(err).Msg("could not create zstd decoder")
	}
}

type Replay struct {
	Version    uint
	Constants  []byte
	Model      constants.Model
	LowGravity bool
	ChaseCam   bool
	Layout     box.Layout
	Spawns     []session.Spawn
	Words      [][]actions.Flags
	Digests    []uint64
}

var _ session.Recorder = (*Replay)(nil)

func New(
	table *constants.Table,
	model constants.Model,
	layout box.Layout,
	spawns []session.Spawn,
) *Replay {
	return &Replay{
		Version:   VERSION,
		Constants: constants.Pack(table[:]),
		Model:     model,
		Layout:    layout,
		Spawns:    append([]session.Spawn(nil), spawns...),
	}
}

func (r *Replay) Record(tick uint32, words []actions.Flags, digest uint64) error {
	if int(tick) != len(r.Words) {
		return fmt.Errorf("replay has %d ticks, cannot record tick %d", len(r.Words), tick)
	}
	r.Words = append(r.Words, append([]actions.Flags(nil), words...))
	r.Digests = append(r.Digests, digest)
	return nil
}

func (r *Replay) Ticks() uint32 {
	return uint32(len(r.Words))
}

// Final is the digest after the last tick.
func (r *Replay) Final() opt.Option[uint64] {
	if len(r.Digests) == 0 {
		return opt.None[uint64]()
	}
	return opt.Some(r.Digests[len(r.Digests)-1])
}

func (r *Replay) check() error {
	if r.Version != VERSION {
		return fmt.Errorf("unsupported replay version %d", r.Version)
	}
	if len(r.Words) != len(r.Digests) {
		return fmt.Errorf("replay has %d ticks but %d digests", len(r.Words), len(r.Digests))
	}
	for tick, words := range r.Words {
		if len(words) != len(r.Spawns) {
			return fmt.Errorf(
				"tick %d has %d action words for %d players",
				tick,
				len(words),
				len(r.Spawns),
			)
		}
	}
	return nil
}

// Session builds a fresh session in the replay's starting state.
func (r *Replay) Session(observers ...physics.Observer) (*session.Session, error) {
	table, err := constants.UnpackTable(r.Constants)
	if err != nil {
		return nil, err
	}

	if opt.IsNone(table.Lookup(r.Model, false)) {
		return nil, fmt.Errorf("no constants for physics model %s", r.Model)
	}

	world, err := r.Layout.Build()
	if err != nil {
		return nil, err
	}

	return session.New(&physics.Simulation{
		Table:      &table,
		Model:      r.Model,
		LowGravity: r.LowGravity,
		ChaseCam:   r.ChaseCam,
		World:      world,
		Observers:  observers,
	}, r.Spawns)
}

func (r *Replay) Encode() ([]byte, error) {
	data, err := cbor.Marshal(r)
	if err != nil {
		return nil, err
	}
	return encoder.EncodeAll(data, nil), nil
}

func Decode(data []byte) (*Replay, error) {
	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("could not decompress replay: %w", err)
	}

	replay := Replay{}
	if err := cbor.Unmarshal(decompressed, &replay); err != nil {
		return nil, fmt.Errorf("could not decode replay: %w", err)
	}

	if err := replay.check(); err != nil {
		return nil, err
	}

	return &replay, nil
}

// Hash identifies the replay's contents.
func (r *Replay) Hash() (uint64, error) {
	data, err := cbor.Marshal(r)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

func (r *Replay) Save(path string) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Load(path string) (*Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

var errMismatch = errors.New("digest mismatch")

type verifier struct {
	digests  []uint64
	mismatch opt.Option[uint32]
}

func (v *verifier) Record(tick uint32, words []actions.Flags, digest uint64) error {
	if digest == v.digests[tick] {
		return nil
	}
	v.mismatch = opt.Some(tick)
	return errMismatch
}

// Verify re-simulates the replay. It returns the first tick whose digest
// differs from the recorded one and false, or the number of ticks and true
// if every tick matched.
func Verify(ctx context.Context, r *Replay, observers ...physics.Observer) (uint32, bool, error) {
	if err := r.check(); err != nil {
		return 0, false, err
	}

	s, err := r.Session(observers...)
	if err != nil {
		return 0, false, err
	}

	v := &verifier{
		digests:  r.Digests,
		mismatch: opt.None[uint32](),
	}

	err = s.Run(ctx, nil, session.Recorded(r.Words), v)
	if !opt.IsNone(v.mismatch) {
		log.Debug().
			Uint32("tick", v.mismatch.Value).
			Uint64("expected", r.Digests[v.mismatch.Value]).
			Msg("replay diverged")
		return v.mismatch.Value, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return r.Ticks(), true, nil
}
