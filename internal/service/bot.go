package service

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/search"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

const (
	OpponentPerfect = "perfect"
	OpponentRandom  = "random"
)

var ErrUnknownOpponent = errors.New("unknown opponent")

// BotService picks a move for the given side. The board is left as it was.
type BotService interface {
	NextMove(board *entity.Board, player entity.Player) (entity.Coordinate, error)
}

type randomBot struct {
	rng *rand.Rand
}

// NewRandomBot plays uniformly among the empty cells. It is not safe for concurrent use.
func NewRandomBot(seed uint64) BotService {
	return &randomBot{rng: rand.New(rand.NewSource(seed))}
}

func (that *randomBot) NextMove(board *entity.Board, _ entity.Player) (entity.Coordinate, error) {
	availableCells := tictactoe.AvailableMoves(board)
	if len(availableCells) == 0 {
		return entity.Coordinate{}, apperror.ErrNoAvailableMoves
	}

	return availableCells[that.rng.Intn(len(availableCells))], nil
}

type perfectBot struct {
	searcher *search.Searcher
}

// NewPerfectBot plays the searched best move for whichever side it is asked about.
func NewPerfectBot(searcher *search.Searcher) BotService {
	return &perfectBot{searcher: searcher}
}

func (that *perfectBot) NextMove(board *entity.Board, player entity.Player) (entity.Coordinate, error) {
	result := that.searcher.Search(board, player)
	if !result.Found {
		return entity.Coordinate{}, apperror.ErrNoAvailableMoves
	}

	return result.Move, nil
}

// NewBot resolves an opponent name into a bot.
func NewBot(name string, searcher *search.Searcher, seed uint64) (BotService, error) {
	switch name {
	case OpponentPerfect:
		return NewPerfectBot(searcher), nil
	case OpponentRandom:
		return NewRandomBot(seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOpponent, name)
	}
}
