package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cfoust/lockstep/pkg/config"
	"github.com/cfoust/lockstep/pkg/version"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Version bool `help:"Print version information and exit." short:"v"`
	Debug   bool `help:"Whether to enable debug logging."`

	Simulate struct {
		Configs  []string `arg:"" optional:"" name:"configs" help:"Configuration files for the session." type:"existingfile"`
		Realtime bool     `help:"Run at the configured tick rate instead of as fast as possible."`
	} `cmd:"" help:"Run a session headless."`

	Verify struct {
		Replay string `arg:"" name:"replay" help:"Replay to re-simulate." type:"existingfile"`
		Ledger string `help:"SQLite database to record the result in." type:"path"`
	} `cmd:"" help:"Re-simulate a replay and check every tick's digest."`

	Constants struct {
		Pack struct {
			Output string `arg:"" name:"output" help:"Where to write the packed table." type:"path"`
			From   string `help:"YAML constants to pack instead of the built-in table." type:"existingfile"`
		} `cmd:"" help:"Write a packed physics constant table."`

		Unpack struct {
			Input string `arg:"" name:"input" help:"A packed constant table." type:"existingfile"`
		} `cmd:"" help:"Print a packed physics constant table as YAML."`
	} `cmd:"" help:"Work with physics constant tables."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("lockstep"),
		kong.Description("deterministic player movement for lockstep sessions"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Version {
		fmt.Printf(
			"lockstep %s (commit %s)\n",
			version.Version,
			version.GitCommit,
		)
		fmt.Printf(
			"built %s\n",
			version.BuildTime,
		)
		os.Exit(0)
	}

	var err error
	switch ctx.Command() {
	case "simulate":
		fallthrough
	case "simulate <configs>":
		err = simulate(CLI.Simulate.Configs, CLI.Simulate.Realtime)
	case "verify <replay>":
		err = verify(CLI.Verify.Replay, CLI.Verify.Ledger)
	case "constants pack <output>":
		err = packConstants(CLI.Constants.Pack.Output, CLI.Constants.Pack.From)
	case "constants unpack <input>":
		err = unpackConstants(CLI.Constants.Unpack.Input)
	case "config":
		os.Stdout.Write(config.DEFAULT)
	}

	if err != nil {
		writeError(err)
	}
}
