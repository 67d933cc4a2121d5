package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"jumpbed/internal/config"
	"jumpbed/internal/game"
	"jumpbed/internal/script"

	"github.com/alecthomas/kong"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Set with -ldflags "-X main.version=..."
var version = "dev"

var CLI struct {
	Version bool `help:"Print version information and exit." short:"v"`
	Debug   bool `help:"Whether to enable debug logging."`

	Play struct {
		Configs      []string `arg:"" optional:"" name:"configs" help:"Configuration files, applied in order over the defaults." type:"existingfile"`
		Seed         int64    `help:"Override the obstacle seed. 0 keeps the configured seed."`
		Obstacles    int      `help:"Override the number of obstacles. Negative keeps the configured count." default:"-1"`
		StdinConsole bool     `help:"Also read console lines from standard input." name:"stdin-console"`
	} `cmd:"" default:"withargs" help:"Open the window and play."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`

	Eval struct {
		Line string `arg:"" help:"Lua source to run."`
	} `cmd:"" help:"Run one console line without a window and print the result."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func configCommand(w io.Writer) error {
	if _, err := w.Write(config.Default); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

func playCommand() error {
	cfg, err := config.Process(CLI.Play.Configs)
	if err != nil {
		return err
	}
	if CLI.Play.Seed != 0 {
		cfg.Scene.Seed = CLI.Play.Seed
	}
	if CLI.Play.Obstacles >= 0 {
		cfg.Scene.Obstacles = CLI.Play.Obstacles
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var opts []game.Option
	if CLI.Play.StdinConsole {
		opts = append(opts, game.WithFeeder(script.NewFeeder(os.Stdin), os.Stdout))
	}

	g := game.New(cfg, opts...)
	defer g.Close()

	if err := g.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	rl.SetTraceLogLevel(rl.LogWarning)

	ctx := kong.Parse(&CLI,
		kong.Name("jumpbed"),
		kong.Description("a box jumping movement test bed"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		rl.SetTraceLogLevel(rl.LogInfo)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Version {
		fmt.Printf("jumpbed %s\n", version)
		os.Exit(0)
	}

	switch ctx.Command() {
	case "play", "play <configs>":
		if err := playCommand(); err != nil {
			writeError(err)
		}
	case "config":
		if err := configCommand(os.Stdout); err != nil {
			writeError(err)
		}
	case "eval <line>":
		cfg, err := config.Process(nil)
		if err != nil {
			writeError(err)
		}
		fmt.Println(game.Eval(cfg.Console, CLI.Eval.Line))
	}
}
