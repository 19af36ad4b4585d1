package entity

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Game is a single human vs machine match. The human always opens.
type Game struct {
	ID     string
	Board  Board
	Turn   Player
	Winner Player
	Status string
	Moves  int
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  Board{},
		Turn:   Human,
		Status: StatusOngoing,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsDraw reports a finished game without a winner.
func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == NoPlayer
}

// Finish closes the game. A NoPlayer winner records a draw.
func (that *Game) Finish(winner Player) {
	that.Winner = winner
	that.Status = StatusFinished
	that.Turn = NoPlayer
}
