package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/mental-dice/config"
	"github.com/luca-patrignani/mental-dice/console"
	"github.com/luca-patrignani/mental-dice/domain/dice"
	"github.com/luca-patrignani/mental-dice/domain/probability"
	"github.com/luca-patrignani/mental-dice/game"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, cfg)
	stop()
	os.Exit(code)
}

// exitInterrupted is the shell convention for a process stopped by SIGINT.
const exitInterrupted = 130

// run plays a session over the dice given in args and returns the exit
// status. Cancelling ctx ends the session even while a prompt is waiting.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer, cfg config.Config) int {
	if cfg.Plain {
		pterm.DisableStyling()
	}
	logger := newLogger(errOut, cfg)
	program := filepath.Base(os.Args[0])

	set, err := dice.Parse(args)
	if err != nil {
		fmt.Fprint(errOut, pterm.Error.Sprintln(err))
		fmt.Fprint(errOut, usageBox(program))
		return 1
	}

	fmt.Fprint(out, banner(cfg.Plain))
	fmt.Fprint(out, pterm.Info.Sprintfln("Loaded %d dice.", len(set)))
	if !probability.IsNonTransitive(set) {
		logger.Warn("dice set has a dominant die", "dice", len(set))
	}

	var opts []console.Option
	if f, ok := in.(*os.File); ok && cfg.Interactive && console.IsInteractive(f) {
		opts = append(opts, console.WithInteractive(true))
	}
	g, err := game.New(set, console.New(in, out, opts...),
		game.WithLogger(logger),
		game.WithVerificationPolicy(cfg.Policy()),
	)
	if err != nil {
		logger.Error("failed to start the game", "err", err)
		return 1
	}

	err = g.Run(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, game.ErrInputClosed):
		logger.Info("input closed, leaving the game")
		return 0
	case errors.Is(err, context.Canceled):
		logger.Info("interrupted, leaving the game")
		return exitInterrupted
	default:
		logger.Error("game aborted", "err", err)
		fmt.Fprint(errOut, pterm.Error.Sprintln(err))
		return 1
	}
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	l := pterm.DefaultLogger.WithWriter(w).WithLevel(cfg.PtermLevel())
	return slog.New(pterm.NewSlogHandler(l))
}
