package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// WinCombos lists the cell indexes of every row, column and diagonal.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsWinner reports whether the player holds a complete line.
func IsWinner(board *entity.Board, player entity.Player) bool {
	mark := player.Mark()
	if mark == entity.EmptyCell {
		return false
	}

	for _, combo := range WinCombos {
		if board[combo[0]] == mark && board[combo[1]] == mark && board[combo[2]] == mark {
			return true
		}
	}

	return false
}

func IsFull(board *entity.Board) bool {
	for _, cell := range board {
		if cell == entity.EmptyCell {
			return false
		}
	}

	return true
}

// AvailableMoves returns the empty cells in row-major order.
func AvailableMoves(board *entity.Board) []entity.Coordinate {
	moves := make([]entity.Coordinate, 0, entity.CellsCount)
	for i, cell := range board {
		if cell == entity.EmptyCell {
			moves = append(moves, entity.CoordinateFromIndex(i))
		}
	}

	return moves
}

// Outcome evaluates a board in the fixed order machine win, human win, full.
// finished is false while the game can go on.
func Outcome(board *entity.Board) (winner entity.Player, finished bool) {
	switch {
	case IsWinner(board, entity.Machine):
		return entity.Machine, true
	case IsWinner(board, entity.Human):
		return entity.Human, true
	case IsFull(board):
		return entity.NoPlayer, true
	default:
		return entity.NoPlayer, false
	}
}
