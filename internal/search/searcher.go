package search

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	WinValue  = 1
	LossValue = -1
	DrawValue = 0
)

// Result describes the outcome of a search from the point of view of the machine:
// Value is +1 when the machine can force a win, -1 when the human can, 0 otherwise.
type Result struct {
	Move     entity.Coordinate `json:"move"`
	Found    bool              `json:"found"`
	Value    int               `json:"value"`
	Nodes    int               `json:"nodes"`
	MaxDepth int               `json:"maxDepth"`
}

type Option func(*Searcher)

// WithPruning toggles alpha-beta cut-offs. The chosen move and value are the same either way.
func WithPruning(enabled bool) Option {
	return func(s *Searcher) {
		s.pruning = enabled
	}
}

// Searcher runs an exhaustive minimax search. It holds no per-search state and is safe for concurrent use.
type Searcher struct {
	pruning bool
}

func New(opts ...Option) *Searcher {
	s := &Searcher{pruning: true}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (that *Searcher) Pruning() bool {
	return that.pruning
}

// BestMove returns the cell the machine should play, false when the board has no empty cell.
func (that *Searcher) BestMove(board *entity.Board) (entity.Coordinate, bool) {
	result := that.Search(board, entity.Machine)

	return result.Move, result.Found
}

// Search picks the best move for player. The machine keeps the first move with a strictly higher value,
// the human the first with a strictly lower one. The board is restored before returning.
func (that *Searcher) Search(board *entity.Board, player entity.Player) Result {
	w := &walker{board: board, pruning: that.pruning}

	moves := tictactoe.AvailableMoves(board)
	if len(moves) == 0 {
		return Result{Value: w.terminalValue()}
	}

	maximizing := player == entity.Machine
	if !maximizing {
		player = entity.Human
	}

	best := math.MaxInt
	if maximizing {
		best = math.MinInt
	}

	var result Result
	for _, move := range moves {
		board.Set(move, player.Mark())
		value := w.minimax(0, !maximizing, math.MinInt, math.MaxInt)
		board.Set(move, entity.EmptyCell)

		if (maximizing && value > best) || (!maximizing && value < best) {
			best = value
			result.Move = move
			result.Found = true
		}
	}

	result.Value = best
	result.Nodes = w.nodes
	result.MaxDepth = w.maxDepth

	return result
}

type walker struct {
	board    *entity.Board
	pruning  bool
	nodes    int
	maxDepth int
}

// terminal evaluates in the fixed order machine win, human win, full.
func (that *walker) terminal() (int, bool) {
	switch {
	case tictactoe.IsWinner(that.board, entity.Machine):
		return WinValue, true
	case tictactoe.IsWinner(that.board, entity.Human):
		return LossValue, true
	case tictactoe.IsFull(that.board):
		return DrawValue, true
	default:
		return DrawValue, false
	}
}

func (that *walker) terminalValue() int {
	value, _ := that.terminal()
	return value
}

// minimax evaluates the board with the given side to move. depth counts plies below the root move
// and never changes the value.
func (that *walker) minimax(depth int, maximizing bool, alpha, beta int) int {
	that.nodes++
	if depth+1 > that.maxDepth {
		that.maxDepth = depth + 1
	}

	if value, ok := that.terminal(); ok {
		return value
	}

	if maximizing {
		maxEval := math.MinInt
		for _, move := range tictactoe.AvailableMoves(that.board) {
			that.board.Set(move, entity.MachineCell)
			eval := that.minimax(depth+1, false, alpha, beta)
			that.board.Set(move, entity.EmptyCell)

			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if that.pruning && beta <= alpha {
				break
			}
		}

		return maxEval
	}

	minEval := math.MaxInt
	for _, move := range tictactoe.AvailableMoves(that.board) {
		that.board.Set(move, entity.HumanCell)
		eval := that.minimax(depth+1, true, alpha, beta)
		that.board.Set(move, entity.EmptyCell)

		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if that.pruning && beta <= alpha {
			break
		}
	}

	return minEval
}
