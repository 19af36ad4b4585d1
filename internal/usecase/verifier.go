package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/search"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

type progressDep interface {
	Add(num int) error
}

type Mismatch struct {
	Board    string        `json:"board"`
	Pruned   search.Result `json:"pruned"`
	Unpruned search.Result `json:"unpruned"`
}

type VerifyReport struct {
	Positions     int        `json:"positions"`
	PrunedNodes   int        `json:"prunedNodes"`
	UnprunedNodes int        `json:"unprunedNodes"`
	Mismatches    []Mismatch `json:"mismatches"`
}

func (that *VerifyReport) OK() bool {
	return len(that.Mismatches) == 0
}

// Verifier checks that pruning never changes the machine's choice.
type Verifier struct {
	logger *slog.Logger

	pruned   *search.Searcher
	unpruned *search.Searcher
}

func NewVerifier(logger *slog.Logger) *Verifier {
	return &Verifier{
		logger:   logger.With("component", "verifier"),
		pruned:   search.New(search.WithPruning(true)),
		unpruned: search.New(search.WithPruning(false)),
	}
}

// Positions lists every unfinished position reachable with the machine to move, each once.
func (that *Verifier) Positions() []entity.Board {
	seen := make(map[entity.Board]struct{})
	positions := make([]entity.Board, 0)

	var walk func(board *entity.Board, player entity.Player)
	walk = func(board *entity.Board, player entity.Player) {
		if _, ok := seen[*board]; ok {
			return
		}
		seen[*board] = struct{}{}

		if _, finished := tictactoe.Outcome(board); finished {
			return
		}

		if player == entity.Machine {
			positions = append(positions, *board)
		}

		for _, move := range tictactoe.AvailableMoves(board) {
			board.Set(move, player.Mark())
			walk(board, player.Opponent())
			board.Set(move, entity.EmptyCell)
		}
	}

	var board entity.Board
	walk(&board, entity.Human)

	return positions
}

// Verify searches every position twice and collects the disagreements.
func (that *Verifier) Verify(ctx context.Context, positions []entity.Board, progress progressDep) (*VerifyReport, error) {
	log := that.logger.With("method", "Verify")

	report := &VerifyReport{Mismatches: make([]Mismatch, 0)}
	for i := range positions {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("verification interrupted: %w", err)
		}

		board := positions[i]
		pruned := that.pruned.Search(&board, entity.Machine)
		unpruned := that.unpruned.Search(&board, entity.Machine)

		report.Positions++
		report.PrunedNodes += pruned.Nodes
		report.UnprunedNodes += unpruned.Nodes

		if pruned.Move != unpruned.Move || pruned.Value != unpruned.Value || pruned.Found != unpruned.Found {
			log.Warn("pruning changed the result", "board", board.String())
			report.Mismatches = append(report.Mismatches, Mismatch{
				Board:    board.String(),
				Pruned:   pruned,
				Unpruned: unpruned,
			})
		}

		if err := progress.Add(1); err != nil {
			return report, fmt.Errorf("failed to update progress: %w", err)
		}
	}

	log.Info("verification finished",
		"positions", report.Positions,
		"mismatches", len(report.Mismatches),
		"prunedNodes", report.PrunedNodes,
		"unprunedNodes", report.UnprunedNodes,
	)

	return report, nil
}
