package entity

const (
	SymbolHuman   = "X"
	SymbolMachine = "O"
	SymbolEmpty   = " "
)

// Player is one of the two sides of a game. The zero value means nobody.
type Player uint8

const (
	NoPlayer Player = iota
	Human
	Machine
)

// Mark returns the cell the player occupies on the board.
func (that Player) Mark() Cell {
	switch that {
	case Human:
		return HumanCell
	case Machine:
		return MachineCell
	default:
		return EmptyCell
	}
}

func (that Player) Opponent() Player {
	switch that {
	case Human:
		return Machine
	case Machine:
		return Human
	default:
		return NoPlayer
	}
}

func (that Player) String() string {
	switch that {
	case Human:
		return "human"
	case Machine:
		return "machine"
	default:
		return "none"
	}
}
