package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cfoust/lockstep/pkg/replay"

	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
)

// recordRun notes a freshly recorded replay in the ledger. Recording ran
// the session twice, so the run counts as verified.
func recordRun(ctx context.Context, ledgerPath string, r *replay.Replay) error {
	hash, err := r.Hash()
	if err != nil {
		return err
	}

	ledger, err := replay.OpenLedger(ledgerPath)
	if err != nil {
		return err
	}
	defer ledger.Close()

	run := replay.Run{
		Replay: replay.FormatHash(hash),
		Ticks:  r.Ticks(),
		Passed: true,
	}
	run.Host, _ = os.Hostname()
	if final := r.Final(); !opt.IsNone(final) {
		run.Digest = replay.FormatHash(final.Value)
	}

	return ledger.Record(ctx, &run)
}

func verify(path string, ledgerPath string) error {
	ctx := context.Background()

	r, err := replay.Load(path)
	if err != nil {
		return fmt.Errorf("could not load replay %s: %w", path, err)
	}

	hash, err := r.Hash()
	if err != nil {
		return err
	}

	tick, ok, err := replay.Verify(ctx, r)
	if err != nil {
		return err
	}

	logger := log.With().
		Str("replay", replay.FormatHash(hash)).
		Uint32("ticks", r.Ticks()).
		Logger()

	run := replay.Run{
		Replay: replay.FormatHash(hash),
		Ticks:  r.Ticks(),
		Passed: ok,
	}
	run.Host, _ = os.Hostname()

	if ok {
		if final := r.Final(); !opt.IsNone(final) {
			run.Digest = replay.FormatHash(final.Value)
		}
		logger.Info().Str("digest", run.Digest).Msg("replay verified")
	} else {
		run.Mismatch = tick
		logger.Error().Uint32("tick", tick).Msg("replay diverged")
	}

	if ledgerPath != "" {
		ledger, err := replay.OpenLedger(ledgerPath)
		if err != nil {
			return err
		}
		defer ledger.Close()

		if err := ledger.Record(ctx, &run); err != nil {
			return err
		}

		agree, err := ledger.Agree(ctx, run.Replay)
		if err != nil {
			return err
		}
		if !agree {
			logger.Warn().Msg("hosts in the ledger disagree about this replay")
		}
	}

	if !ok {
		return fmt.Errorf("replay diverged at tick %d", tick)
	}

	return nil
}
