package config

import (
	"github.com/cfoust/lockstep/pkg/session"
	"github.com/cfoust/lockstep/pkg/world/box"
)

type SimulationSettings struct {
	Model      string
	LowGravity bool
	ChaseCam   bool
	TickRate   int
	// Zero runs until every script has ended.
	Ticks uint32
	// A packed constant table; empty means the built-in one.
	ConstantsFile string
}

type Player struct {
	Spawn  [3]int16
	Facing int16
	Script session.Script
}

type ReplaySettings struct {
	Path string
}

type LedgerSettings struct {
	Path string
}

type RedisSettings struct {
	Address  string
	Password string
	DB       int
	Session  string
	Peer     string
}

type Config struct {
	Simulation SimulationSettings
	World      box.Layout
	Players    []Player
	Replay     ReplaySettings
	Ledger     LedgerSettings
	Redis      RedisSettings
}
