package session

import (
	"fmt"
	"math"

	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/physics"
	"github.com/cfoust/lockstep/pkg/physics/actions"
)

// Command is what a player asks for on one tick: held keys plus, for
// absolute controllers, how far the controller moved.
type Command struct {
	Flags    actions.Flags
	Absolute bool
	Yaw      fixed.Fixed
	Pitch    fixed.Fixed
	Position fixed.Fixed
}

// Word turns the command into the action word that is actually simulated
// (and recorded). Absolute deltas depend on how the player is already
// turning, so this happens right before the tick.
func (c Command) Word(v physics.Variables) actions.Flags {
	if !c.Absolute {
		return c.Flags
	}

	return actions.MaskInAbsolutePositioning(
		c.Flags,
		v.AngularVelocity,
		v.VerticalAngularVelocity,
		c.Yaw,
		c.Pitch,
		c.Position,
	)
}

// Segment holds a set of actions for a number of ticks. Yaw, pitch and
// position are absolute controller deltas in [-1, 1].
type Segment struct {
	Ticks    int
	Actions  []string
	Yaw      *float64
	Pitch    *float64
	Position *float64
}

type Script []Segment

func toFixed(value *float64) (fixed.Fixed, error) {
	if value == nil {
		return 0, nil
	}
	if *value < -1 || *value > 1 || math.IsNaN(*value) {
		return 0, fmt.Errorf("delta %f is outside [-1, 1]", *value)
	}
	return fixed.Fixed(math.Round(*value * float64(fixed.FIXED_ONE))), nil
}

func (s Segment) Command() (Command, error) {
	flags, err := actions.Parse(s.Actions)
	if err != nil {
		return Command{}, err
	}

	command := Command{
		Flags:    flags,
		Absolute: s.Yaw != nil || s.Pitch != nil || s.Position != nil,
	}

	if command.Yaw, err = toFixed(s.Yaw); err != nil {
		return Command{}, fmt.Errorf("yaw: %w", err)
	}
	if command.Pitch, err = toFixed(s.Pitch); err != nil {
		return Command{}, fmt.Errorf("pitch: %w", err)
	}
	if command.Position, err = toFixed(s.Position); err != nil {
		return Command{}, fmt.Errorf("position: %w", err)
	}

	return command, nil
}

// Commands expands the script into one command per tick.
func (s Script) Commands() ([]Command, error) {
	var commands []Command
	for i, segment := range s {
		if segment.Ticks < 0 {
			return nil, fmt.Errorf("segment %d: negative tick count", i)
		}

		command, err := segment.Command()
		if err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}

		for tick := 0; tick < segment.Ticks; tick++ {
			commands = append(commands, command)
		}
	}
	return commands, nil
}

// Source produces every player's command for a tick. It returns false when
// there is nothing left to simulate.
type Source interface {
	Next(tick uint32) ([]Command, bool)
}

// Scripted plays back one list of commands per player. Players whose script
// has run out stand still until the longest script ends.
type Scripted struct {
	players [][]Command
	length  uint32
}

var _ Source = (*Scripted)(nil)

func NewScripted(scripts []Script) (*Scripted, error) {
	source := &Scripted{}
	for i, script := range scripts {
		commands, err := script.Commands()
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i, err)
		}

		source.players = append(source.players, commands)
		source.length = max(source.length, uint32(len(commands)))
	}
	return source, nil
}

func (s *Scripted) Len() uint32 {
	return s.length
}

// Limit runs the source for exactly the given number of ticks. Players
// idle once their script is over.
func (s *Scripted) Limit(ticks uint32) {
	s.length = ticks
}

func (s *Scripted) Next(tick uint32) ([]Command, bool) {
	if tick >= s.length {
		return nil, false
	}

	commands := make([]Command, len(s.players))
	for i, player := range s.players {
		if int(tick) < len(player) {
			commands[i] = player[tick]
		}
	}
	return commands, true
}

// Recorded replays exact action words, such as from a replay.
type Recorded [][]actions.Flags

var _ Source = Recorded(nil)

func (r Recorded) Next(tick uint32) ([]Command, bool) {
	if int(tick) >= len(r) {
		return nil, false
	}

	commands := make([]Command, len(r[tick]))
	for i, flags := range r[tick] {
		commands[i] = Command{Flags: flags}
	}
	return commands, true
}
