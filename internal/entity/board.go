package entity

import (
	"errors"
	"fmt"
	"strings"
)

const (
	BoardSize  = 3
	CellsCount = BoardSize * BoardSize
)

var (
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidBoard = errors.New("invalid board")
)

// Cell holds the state of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	HumanCell
	MachineCell
)

func (that Cell) String() string {
	switch that {
	case HumanCell:
		return SymbolHuman
	case MachineCell:
		return SymbolMachine
	default:
		return SymbolEmpty
	}
}

// Coordinate addresses a cell by row and column, both in [0, BoardSize).
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewCoordinate validates row and col.
func NewCoordinate(row, col int) (Coordinate, error) {
	coord := Coordinate{Row: row, Col: col}
	if !coord.IsValid() {
		return Coordinate{}, fmt.Errorf("%w: row %d, col %d", ErrInvalidCell, row, col)
	}

	return coord, nil
}

// CoordinateFromIndex maps a row-major index to a coordinate.
func CoordinateFromIndex(index int) Coordinate {
	return Coordinate{Row: index / BoardSize, Col: index % BoardSize}
}

func (that Coordinate) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Coordinate) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Board is a 3x3 grid stored row-major.
type Board [CellsCount]Cell

// At expects a valid coordinate.
func (that *Board) At(coord Coordinate) Cell {
	return that[coord.Index()]
}

// Set expects a valid coordinate.
func (that *Board) Set(coord Coordinate, cell Cell) {
	that[coord.Index()] = cell
}

// Count returns how many cells hold the given value.
func (that *Board) Count(cell Cell) int {
	count := 0
	for _, c := range that {
		if c == cell {
			count++
		}
	}

	return count
}

// SideToMove assumes the human opens the game.
func (that *Board) SideToMove() Player {
	if that.Count(HumanCell) > that.Count(MachineCell) {
		return Machine
	}

	return Human
}

// String encodes the board as nine row-major symbols with '.' for empty cells.
func (that *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellsCount)

	for _, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte('.')
			continue
		}
		sb.WriteString(cell.String())
	}

	return sb.String()
}

// ParseBoard reads the format produced by Board.String. '_' and ' ' are accepted as empty cells,
// marks are case-insensitive.
func ParseBoard(raw string) (Board, error) {
	var board Board

	if len(raw) != CellsCount {
		return board, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, CellsCount, len(raw))
	}

	for i, r := range strings.ToUpper(raw) {
		switch r {
		case 'X':
			board[i] = HumanCell
		case 'O':
			board[i] = MachineCell
		case '.', '_', ' ':
			board[i] = EmptyCell
		default:
			return Board{}, fmt.Errorf("%w: unexpected symbol %q at %d", ErrInvalidBoard, r, i)
		}
	}

	return board, nil
}
