package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/search"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	MessageWelcome      = "Welcome to Tic-Tac-Toe! You are 'X', AI is 'O'"
	MessageInvalidMove  = "Invalid move! Try again."
	MessageInvalidInput = "Invalid input: %s. Try again."
	MessageHumanWins    = "Congratulations! You win!"
	MessageMachineWins  = "AI wins! Better luck next time."
	MessageDraw         = "It's a draw!"
	MessageMachinePlays = "AI plays:"
	MessageSearchStats  = "AI searched %d positions, depth %d, value %+d"
)

// consoleDep obtains human moves and shows the game.
type consoleDep interface {
	ReadMove(ctx context.Context) (entity.Coordinate, error)
	RenderBoard(board entity.Board) error
	Notify(message string) error
}

type searcherDep interface {
	Search(board *entity.Board, player entity.Player) search.Result
}

type GameManager struct {
	logger *slog.Logger

	console   consoleDep
	searcher  searcherDep
	showStats bool
}

type GameManagerOption func(*GameManager)

// WithSearchStats prints the search statistics after every machine move.
func WithSearchStats(enabled bool) GameManagerOption {
	return func(gm *GameManager) {
		gm.showStats = enabled
	}
}

func NewGameManager(logger *slog.Logger, console consoleDep, searcher searcherDep, opts ...GameManagerOption) *GameManager {
	gm := &GameManager{
		logger: logger.With("component", "game_manager"),

		console:  console,
		searcher: searcher,
	}

	for _, opt := range opts {
		opt(gm)
	}

	return gm
}

// Play runs one interactive game: the human opens, the machine answers with the searched best move.
// The finished game is returned even when an error interrupts it.
func (that *GameManager) Play(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID())
	log := that.logger.With("method", "Play", "gameID", game.ID)

	log.Info("game started")

	if err := that.console.Notify(MessageWelcome); err != nil {
		return game, fmt.Errorf("failed to notify: %w", err)
	}

	if err := that.console.RenderBoard(game.Board); err != nil {
		return game, fmt.Errorf("failed to render board: %w", err)
	}

	for {
		if err := that.humanTurn(ctx, game); err != nil {
			return game, err
		}

		if game.IsFinished() {
			if err := that.console.RenderBoard(game.Board); err != nil {
				return game, fmt.Errorf("failed to render board: %w", err)
			}

			return game, that.finish(log, game)
		}

		if err := that.machineTurn(log, game); err != nil {
			return game, err
		}

		if game.IsFinished() {
			return game, that.finish(log, game)
		}
	}
}

// humanTurn asks for moves until one is accepted.
func (that *GameManager) humanTurn(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "humanTurn", "gameID", game.ID)

	for {
		coord, err := that.console.ReadMove(ctx)
		if err != nil {
			if !isInputError(err) {
				return fmt.Errorf("failed to read move: %w", err)
			}

			log.Debug("rejected input", "error", err)
			if err = that.console.Notify(fmt.Sprintf(MessageInvalidInput, inputErrorReason(err))); err != nil {
				return fmt.Errorf("failed to notify: %w", err)
			}

			continue
		}

		err = tictactoe.MakeTurn(game, entity.Human, coord)
		switch {
		case err == nil:
			log.Debug("human moved", "move", coord.String())
			return nil
		case errors.Is(err, apperror.ErrCellOccupied):
			if err = that.console.Notify(MessageInvalidMove); err != nil {
				return fmt.Errorf("failed to notify: %w", err)
			}
		case isInputError(err):
			if err = that.console.Notify(fmt.Sprintf(MessageInvalidInput, inputErrorReason(err))); err != nil {
				return fmt.Errorf("failed to notify: %w", err)
			}
		default:
			return fmt.Errorf("failed make turn: %w", err)
		}
	}
}

func (that *GameManager) machineTurn(log *slog.Logger, game *entity.Game) error {
	result := that.searcher.Search(&game.Board, entity.Machine)
	if !result.Found {
		return apperror.ErrNoAvailableMoves
	}

	log.Debug("machine moved",
		"move", result.Move.String(),
		"value", result.Value,
		"nodes", result.Nodes,
		"maxDepth", result.MaxDepth,
	)

	if err := tictactoe.MakeTurn(game, entity.Machine, result.Move); err != nil {
		return fmt.Errorf("machine failed to make turn: %w", err)
	}

	if err := that.console.Notify(MessageMachinePlays); err != nil {
		return fmt.Errorf("failed to notify: %w", err)
	}

	if err := that.console.RenderBoard(game.Board); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	if that.showStats {
		stats := fmt.Sprintf(MessageSearchStats, result.Nodes, result.MaxDepth, result.Value)
		if err := that.console.Notify(stats); err != nil {
			return fmt.Errorf("failed to notify: %w", err)
		}
	}

	return nil
}

func (that *GameManager) finish(log *slog.Logger, game *entity.Game) error {
	message := MessageDraw
	switch game.Winner {
	case entity.Human:
		message = MessageHumanWins
	case entity.Machine:
		message = MessageMachineWins
	}

	log.Info("game finished", "winner", game.Winner.String(), "moves", game.Moves)

	if err := that.console.Notify(message); err != nil {
		return fmt.Errorf("failed to notify: %w", err)
	}

	return nil
}

func isInputError(err error) bool {
	return errors.Is(err, apperror.ErrInvalidInput) || errors.Is(err, apperror.ErrOutOfRange)
}

func inputErrorReason(err error) string {
	if errors.Is(err, apperror.ErrOutOfRange) {
		return "row and column must be between 0 and 2"
	}

	return "enter row and column as two integers separated by a space"
}
