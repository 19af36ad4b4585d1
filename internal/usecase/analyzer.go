package usecase

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/search"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const ResultDraw = "draw"

type SearchStats struct {
	Nodes    int `json:"nodes"`
	MaxDepth int `json:"maxDepth"`
}

// Report describes a single position. Value is from the machine's point of view.
type Report struct {
	Board      string             `json:"board"`
	SideToMove string             `json:"sideToMove"`
	Finished   bool               `json:"finished"`
	Winner     string             `json:"winner,omitempty"`
	BestMove   *entity.Coordinate `json:"bestMove,omitempty"`
	Value      int                `json:"value"`
	Pruned     SearchStats        `json:"pruned"`
	Unpruned   SearchStats        `json:"unpruned"`
	Agree      bool               `json:"agree"`
}

type Analyzer struct {
	pruned   *search.Searcher
	unpruned *search.Searcher
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		pruned:   search.New(search.WithPruning(true)),
		unpruned: search.New(search.WithPruning(false)),
	}
}

// Analyze searches the position for the side to move with and without pruning.
func (that *Analyzer) Analyze(board entity.Board) (*Report, error) {
	if err := validatePosition(&board); err != nil {
		return nil, err
	}

	side := board.SideToMove()
	report := &Report{
		Board:      board.String(),
		SideToMove: side.String(),
	}

	if winner, finished := tictactoe.Outcome(&board); finished {
		report.Finished = true
		report.Winner = ResultDraw
		switch winner {
		case entity.Machine:
			report.Winner, report.Value = winner.String(), search.WinValue
		case entity.Human:
			report.Winner, report.Value = winner.String(), search.LossValue
		}
		report.Agree = true

		return report, nil
	}

	pruned := that.pruned.Search(&board, side)
	unpruned := that.unpruned.Search(&board, side)

	move := pruned.Move
	report.BestMove = &move
	report.Value = pruned.Value
	report.Pruned = SearchStats{Nodes: pruned.Nodes, MaxDepth: pruned.MaxDepth}
	report.Unpruned = SearchStats{Nodes: unpruned.Nodes, MaxDepth: unpruned.MaxDepth}
	report.Agree = pruned.Move == unpruned.Move && pruned.Value == unpruned.Value

	return report, nil
}

// validatePosition rejects boards that cannot come up when the human opens.
func validatePosition(board *entity.Board) error {
	humans, machines := board.Count(entity.HumanCell), board.Count(entity.MachineCell)
	if diff := humans - machines; diff < 0 || diff > 1 {
		return fmt.Errorf("%w: %d X and %d O marks", entity.ErrInvalidBoard, humans, machines)
	}

	return nil
}
