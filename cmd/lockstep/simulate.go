package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/cfoust/lockstep/pkg/config"
	"github.com/cfoust/lockstep/pkg/consensus"
	"github.com/cfoust/lockstep/pkg/divergence"
	"github.com/cfoust/lockstep/pkg/replay"
	"github.com/cfoust/lockstep/pkg/session"
	"github.com/cfoust/lockstep/pkg/ticker"

	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
)

func simulate(configs []string, realtime bool) error {
	config, err := config.Process(configs)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	table, err := config.Table()
	if err != nil {
		return err
	}

	model, err := config.PhysicsModel()
	if err != nil {
		return err
	}

	checker := divergence.New()
	s, err := config.NewSession(&table, checker)
	if err != nil {
		return err
	}

	source, err := config.Source()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	go func() {
		select {
		case sig := <-sigs:
			log.Info().Msgf("terminating: %v", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var recorders []session.Recorder

	var recording *replay.Replay
	if config.Replay.Path != "" {
		recording = replay.New(&table, model, config.World, config.Spawns())
		recording.LowGravity = config.Simulation.LowGravity
		recording.ChaseCam = config.Simulation.ChaseCam
		recorders = append(recorders, recording)
	}

	if settings := config.Redis; settings.Address != "" {
		client := consensus.NewClient(settings.Address, settings.Password, settings.DB)
		defer client.Close()

		exchange := consensus.New(client, settings.Session, settings.Peer)
		if err := exchange.CheckTable(ctx, &table); err != nil {
			return err
		}
		if err := exchange.PublishTable(ctx, &table); err != nil {
			return err
		}

		recorders = append(recorders, exchange.Recorder(ctx))
		log.Info().
			Str("session", settings.Session).
			Str("peer", settings.Peer).
			Msg("publishing digests")
	}

	var (
		ticks   <-chan time.Time
		watcher *session.Watcher
	)
	if realtime {
		t := ticker.New(ticker.Period(config.Simulation.TickRate))
		defer t.Stop()
		ticks = t.C

		watcher = s.Watch()
		go report(ctx, watcher, config.Simulation.TickRate)
	}

	log.Info().
		Int("players", s.NumPlayers()).
		Uint32("ticks", source.Len()).
		Str("model", model.String()).
		Msg("starting simulation")

	start := time.Now()
	err = s.Run(ctx, ticks, source, recorders...)
	if watcher != nil {
		watcher.Done()
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return err
	}

	snapshot := s.Snapshot()
	for _, player := range snapshot.Players {
		log.Info().
			Int16("player", player.Index).
			Interface("location", player.Body.Location).
			Int16("polygon", player.Body.Polygon).
			Str("action", player.Variables.Action.String()).
			Msg("final state")
	}
	log.Info().
		Uint32("ticks", snapshot.Tick).
		Str("digest", replay.FormatHash(snapshot.Digest)).
		Dur("elapsed", time.Since(start)).
		Msg("simulation finished")

	// Run it once more in process; any difference means the simulation
	// depends on something other than its inputs.
	s.Reset()
	checker.Begin()
	if err := s.Run(ctx, nil, source); err != nil {
		return err
	}

	if first := checker.First(); !opt.IsNone(first) {
		return fmt.Errorf(
			"simulation is not deterministic: player %d diverged at sample %d",
			first.Value.Player,
			first.Value.Index,
		)
	}
	if digest := s.Digest(); digest != snapshot.Digest {
		return fmt.Errorf("simulation is not deterministic: second run ended with a different digest")
	}

	if recording != nil {
		if err := recording.Save(config.Replay.Path); err != nil {
			return fmt.Errorf("could not save replay: %w", err)
		}
		log.Info().Str("path", config.Replay.Path).Msg("saved replay")

		if config.Ledger.Path != "" {
			if err := recordRun(ctx, config.Ledger.Path, recording); err != nil {
				return err
			}
		}
	}

	return nil
}

// report logs where everyone is about once a second.
func report(ctx context.Context, watcher *session.Watcher, rate int) {
	if rate <= 0 {
		rate = ticker.DEFAULT_RATE
	}

	for {
		select {
		case snapshot := <-watcher.Recv():
			if snapshot.Tick%uint32(rate) != 0 {
				continue
			}

			for _, player := range snapshot.Players {
				log.Info().
					Uint32("tick", snapshot.Tick).
					Int16("player", player.Index).
					Interface("location", player.Body.Location).
					Str("action", player.Variables.Action.String()).
					Msg("")
			}
		case <-ctx.Done():
			return
		}
	}
}
