package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type botDep interface {
	NextMove(board *entity.Board, player entity.Player) (entity.Coordinate, error)
}

type SelfPlayReport struct {
	Games       int `json:"games"`
	MachineWins int `json:"machineWins"`
	HumanWins   int `json:"humanWins"`
	Draws       int `json:"draws"`
}

// SelfPlay pits the machine against a bot playing the human side.
type SelfPlay struct {
	logger *slog.Logger

	searcher searcherDep
	opponent botDep
}

func NewSelfPlay(logger *slog.Logger, searcher searcherDep, opponent botDep) *SelfPlay {
	return &SelfPlay{
		logger:   logger.With("component", "self_play"),
		searcher: searcher,
		opponent: opponent,
	}
}

func (that *SelfPlay) Run(ctx context.Context, games int, progress progressDep) (*SelfPlayReport, error) {
	log := that.logger.With("method", "Run")

	report := &SelfPlayReport{}
	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("self play interrupted: %w", err)
		}

		game, err := that.playGame()
		if err != nil {
			return report, fmt.Errorf("failed to play game %d: %w", i+1, err)
		}

		report.Games++
		switch game.Winner {
		case entity.Machine:
			report.MachineWins++
		case entity.Human:
			report.HumanWins++
			log.Warn("machine lost", "gameID", game.ID, "board", game.Board.String())
		default:
			report.Draws++
		}

		if err = progress.Add(1); err != nil {
			return report, fmt.Errorf("failed to update progress: %w", err)
		}
	}

	log.Info("self play finished",
		"games", report.Games,
		"machineWins", report.MachineWins,
		"humanWins", report.HumanWins,
		"draws", report.Draws,
	)

	return report, nil
}

func (that *SelfPlay) playGame() (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID())

	for game.IsOngoing() {
		var (
			move entity.Coordinate
			err  error
		)

		if game.Turn == entity.Human {
			move, err = that.opponent.NextMove(&game.Board, entity.Human)
			if err != nil {
				return game, fmt.Errorf("opponent failed to choose a move: %w", err)
			}
		} else {
			result := that.searcher.Search(&game.Board, entity.Machine)
			if !result.Found {
				return game, fmt.Errorf("machine found no move on %s", game.Board.String())
			}
			move = result.Move
		}

		if err = tictactoe.MakeTurn(game, game.Turn, move); err != nil {
			return game, fmt.Errorf("failed make turn: %w", err)
		}
	}

	that.logger.Debug("game finished", "gameID", game.ID, "winner", game.Winner.String(), "board", game.Board.String())

	return game, nil
}
