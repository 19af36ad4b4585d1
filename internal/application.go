package application

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/search"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

const (
	CommandPlay     = "play"
	CommandAnalyze  = "analyze"
	CommandVerify   = "verify"
	CommandSelfPlay = "selfplay"
)

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrMissingBoard       = errors.New("expected exactly one board argument")
	ErrVerificationFailed = errors.New("pruned and unpruned searches disagree")
	ErrInvalidGames       = errors.New("number of games must be positive")
)

// Streams are the process standard streams. Progress bars go to Err so Out stays parseable.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// RunApp - runs the command named by the first argument, play by default.
func RunApp(logger *slog.Logger, conf *config.Config, args []string, streams Streams) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	command := CommandPlay
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	searcher := search.New(search.WithPruning(!conf.NoPruning))

	switch command {
	case CommandPlay:
		return runPlay(ctx, logger, conf, searcher, streams)
	case CommandAnalyze:
		return runAnalyze(args, streams)
	case CommandVerify:
		return runVerify(ctx, logger, conf, args, streams)
	case CommandSelfPlay:
		return runSelfPlay(ctx, logger, conf, searcher, args, streams)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func runPlay(ctx context.Context, logger *slog.Logger, conf *config.Config, searcher *search.Searcher, streams Streams) error {
	log := logger.With("component", "app", "command", CommandPlay)

	gameConsole := console.New(logger, streams.In, streams.Out, !conf.NoColor)
	defer gameConsole.Close()

	gameManager := usecase.NewGameManager(logger, gameConsole, searcher, usecase.WithSearchStats(conf.ShowStats))

	game, err := gameManager.Play(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info("Game interrupted", "gameID", game.ID)
		return nil
	}

	if err != nil {
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func runAnalyze(args []string, streams Streams) error {
	flags := flag.NewFlagSet(CommandAnalyze, flag.ContinueOnError)
	flags.SetOutput(streams.Err)
	asJSON := flags.Bool("json", false, "print the report as JSON")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	if flags.NArg() != 1 {
		return ErrMissingBoard
	}

	board, err := entity.ParseBoard(flags.Arg(0))
	if err != nil {
		return fmt.Errorf("failed to parse board: %w", err)
	}

	report, err := usecase.NewAnalyzer().Analyze(board)
	if err != nil {
		return fmt.Errorf("failed to analyze: %w", err)
	}

	if *asJSON {
		return console.WriteJSON(streams.Out, report)
	}

	return console.WriteAnalysis(streams.Out, report)
}

func runVerify(ctx context.Context, logger *slog.Logger, conf *config.Config, args []string, streams Streams) error {
	flags := flag.NewFlagSet(CommandVerify, flag.ContinueOnError)
	flags.SetOutput(streams.Err)
	asJSON := flags.Bool("json", false, "print the report as JSON")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	verifier := usecase.NewVerifier(logger)
	positions := verifier.Positions()
	bar := console.NewProgressBar(streams.Err, len(positions), "verifying", !conf.NoColor)

	report, err := verifier.Verify(ctx, positions, bar)
	if err != nil {
		return fmt.Errorf("failed to verify: %w", err)
	}

	if *asJSON {
		err = console.WriteJSON(streams.Out, report)
	} else {
		err = console.WriteVerification(streams.Out, report)
	}

	if err != nil {
		return err
	}

	if !report.OK() {
		return fmt.Errorf("%w on %d positions", ErrVerificationFailed, len(report.Mismatches))
	}

	return nil
}

func runSelfPlay(ctx context.Context, logger *slog.Logger, conf *config.Config, searcher *search.Searcher, args []string, streams Streams) error {
	flags := flag.NewFlagSet(CommandSelfPlay, flag.ContinueOnError)
	flags.SetOutput(streams.Err)
	games := flags.Int("games", 100, "number of games to play")
	opponent := flags.String("opponent", service.OpponentPerfect, "human side: perfect or random")
	seed := flags.Uint64("seed", 1, "seed of the random opponent")
	asJSON := flags.Bool("json", false, "print the report as JSON")

	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	if *games <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGames, *games)
	}

	bot, err := service.NewBot(*opponent, searcher, *seed)
	if err != nil {
		return fmt.Errorf("failed to create opponent: %w", err)
	}

	bar := console.NewProgressBar(streams.Err, *games, "playing", !conf.NoColor)

	report, err := usecase.NewSelfPlay(logger, searcher, bot).Run(ctx, *games, bar)
	if err != nil {
		return fmt.Errorf("self play failed: %w", err)
	}

	if *asJSON {
		return console.WriteJSON(streams.Out, report)
	}

	return console.WriteSelfPlay(streams.Out, report)
}
