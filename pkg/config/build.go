package config

import (
	"fmt"
	"os"

	"github.com/cfoust/lockstep/pkg/fixed"
	"github.com/cfoust/lockstep/pkg/physics"
	"github.com/cfoust/lockstep/pkg/physics/constants"
	"github.com/cfoust/lockstep/pkg/session"

	opt "github.com/repeale/fp-go/option"
)

// Table loads the configured constant table.
func (c *Config) Table() (constants.Table, error) {
	path := c.Simulation.ConstantsFile
	if path == "" {
		return constants.DEFAULT_TABLE, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return constants.Table{}, err
	}

	table, err := constants.UnpackTable(data)
	if err != nil {
		return table, fmt.Errorf("could not load constants from %s: %w", path, err)
	}
	return table, nil
}

func (c *Config) PhysicsModel() (constants.Model, error) {
	model := constants.ParseModel(c.Simulation.Model)
	if opt.IsNone(model) {
		return 0, fmt.Errorf("unknown physics model %q", c.Simulation.Model)
	}
	return model.Value, nil
}

func (c *Config) Spawns() []session.Spawn {
	spawns := make([]session.Spawn, len(c.Players))
	for i, player := range c.Players {
		spawns[i] = session.Spawn{
			Location: fixed.WorldPoint3D{
				X: fixed.WorldDistance(player.Spawn[0]),
				Y: fixed.WorldDistance(player.Spawn[1]),
				Z: fixed.WorldDistance(player.Spawn[2]),
			},
			Facing: fixed.NormalizeAngle(fixed.Angle(player.Facing)),
		}
	}
	return spawns
}

// Source builds the scripted input for every player. A configured tick
// count cuts the scripts short or pads them with idle ticks.
func (c *Config) Source() (*session.Scripted, error) {
	scripts := make([]session.Script, len(c.Players))
	for i, player := range c.Players {
		scripts[i] = player.Script
	}

	source, err := session.NewScripted(scripts)
	if err != nil {
		return nil, err
	}

	if c.Simulation.Ticks > 0 {
		source.Limit(c.Simulation.Ticks)
	}
	return source, nil
}

// NewSimulation puts together everything the players of a session share.
func (c *Config) NewSimulation(table *constants.Table, observers ...physics.Observer) (*physics.Simulation, error) {
	model, err := c.PhysicsModel()
	if err != nil {
		return nil, err
	}

	if opt.IsNone(table.Lookup(model, false)) {
		return nil, fmt.Errorf("physics model %s has no constants", model)
	}

	world, err := c.World.Build()
	if err != nil {
		return nil, err
	}

	return &physics.Simulation{
		Table:      table,
		Model:      model,
		LowGravity: c.Simulation.LowGravity,
		ChaseCam:   c.Simulation.ChaseCam,
		World:      world,
		Observers:  observers,
	}, nil
}

func (c *Config) NewSession(table *constants.Table, observers ...physics.Observer) (*session.Session, error) {
	sim, err := c.NewSimulation(table, observers...)
	if err != nil {
		return nil, err
	}
	return session.New(sim, c.Spawns())
}
