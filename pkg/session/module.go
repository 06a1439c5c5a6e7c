// Package session runs a group of players in lockstep. Every peer that
// feeds a session the same action words ends up with bit-identical state,
// which Digest summarizes for comparison.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/io"
	"github.com/cfoust/lockstep/pkg/physics"
	"github.com/cfoust/lockstep/pkg/physics/actions"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
)

type Spawn struct {
	Location fixed.WorldPoint3D
	Facing   fixed.Angle
}

// Recorder sees the words that were simulated on each tick and the
// resulting digest.
type Recorder interface {
	Record(tick uint32, words []actions.Flags, digest uint64) error
}

type PlayerSnapshot struct {
	Index     int16
	Dead      bool
	Variables physics.Variables
	Body      physics.Body
	Shadow    physics.Shadow
}

type Snapshot struct {
	Tick    uint32
	Digest  uint64
	Players []PlayerSnapshot
}

type Session struct {
	mutex deadlock.RWMutex

	sim     *physics.Simulation
	spawns  []Spawn
	players []*physics.Player
	tick    uint32

	watchers *topic[Snapshot]
}

func New(sim *physics.Simulation, spawns []Spawn) (*Session, error) {
	if len(spawns) == 0 {
		return nil, fmt.Errorf("session has no players")
	}
	if len(spawns) > 1<<15-1 {
		return nil, fmt.Errorf("too many players: %d", len(spawns))
	}

	s := &Session{
		sim:      sim,
		spawns:   append([]Spawn(nil), spawns...),
		watchers: newTopic[Snapshot](),
	}
	s.reset()
	return s, nil
}

func (s *Session) reset() {
	s.players = make([]*physics.Player, len(s.spawns))
	for i, spawn := range s.spawns {
		s.players[i] = physics.NewPlayer(s.sim, int16(i), spawn.Location, spawn.Facing)
	}
	s.tick = 0
}

// Reset puts every player back at their spawn.
func (s *Session) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.reset()
}

func (s *Session) Simulation() *physics.Simulation {
	return s.sim
}

func (s *Session) NumPlayers() int {
	return len(s.spawns)
}

func (s *Session) Tick() uint32 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.tick
}

// Advance simulates one tick. Players are always updated in index order.
func (s *Session) Advance(words []actions.Flags) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.advance(words)
}

func (s *Session) advance(words []actions.Flags) error {
	if len(words) != len(s.players) {
		return fmt.Errorf(
			"tick %d: got %d action words for %d players",
			s.tick,
			len(words),
			len(s.players),
		)
	}

	for i, player := range s.players {
		player.Update(s.sim, words[i])
	}
	s.tick++

	return nil
}

// Step turns commands into action words, simulates them and returns the
// words that were used.
func (s *Session) Step(commands []Command) ([]actions.Flags, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if len(commands) != len(s.players) {
		return nil, fmt.Errorf(
			"tick %d: got %d commands for %d players",
			s.tick,
			len(commands),
			len(s.players),
		)
	}

	words := make([]actions.Flags, len(commands))
	for i, command := range commands {
		words[i] = command.Word(s.players[i].Variables)
	}

	return words, s.advance(words)
}

func (s *Session) digest() uint64 {
	buffer := io.Buffer{}
	for _, player := range s.players {
		if err := io.Marshal(&buffer, player.Variables); err != nil {
			log.Panic().Err(err).Msg("could not encode physics variables")
		}
	}
	return xxhash.Sum64(buffer)
}

// Digest summarizes every player's motion state. Two peers in sync have the
// same digest on the same tick.
func (s *Session) Digest() uint64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.digest()
}

// Snapshot copies the session's state. Safe to call while the session is
// running.
func (s *Session) Snapshot() Snapshot {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snapshot := Snapshot{
		Tick:    s.tick,
		Digest:  s.digest(),
		Players: make([]PlayerSnapshot, len(s.players)),
	}
	for i, player := range s.players {
		snapshot.Players[i] = PlayerSnapshot{
			Index:     player.Index,
			Dead:      player.Dead,
			Variables: player.Variables,
			Body:      player.Body,
			Shadow:    player.Shadow,
		}
	}
	return snapshot
}

// Kill marks a player dead, or alive again.
func (s *Session) Kill(player int, dead bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if player < 0 || player >= len(s.players) {
		return fmt.Errorf("no such player %d", player)
	}
	s.players[player].Dead = dead
	return nil
}

// Run pulls commands from source until it runs dry or ctx is done. With a
// nil ticks channel it runs as fast as possible, otherwise it waits for a
// tick before each step.
func (s *Session) Run(
	ctx context.Context,
	ticks <-chan time.Time,
	source Source,
	recorders ...Recorder,
) error {
	for {
		if ticks != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticks:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		tick := s.Tick()
		commands, ok := source.Next(tick)
		if !ok {
			return nil
		}

		words, err := s.Step(commands)
		if err != nil {
			return err
		}

		digest := s.Digest()
		for _, recorder := range recorders {
			if err := recorder.Record(tick, words, digest); err != nil {
				return fmt.Errorf("tick %d: %w", tick, err)
			}
		}

		if !s.watchers.empty() {
			s.watchers.publish(s.Snapshot())
		}

		log.Debug().Uint32("tick", tick).Uint64("digest", digest).Msg("tick")
	}
}
