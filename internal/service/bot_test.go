package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/search"
)

func TestRandomBot_NextMove(t *testing.T) {
	t.Run("Always picks an empty cell", func(t *testing.T) {
		// Given: a board with a few marks
		board, err := entity.ParseBoard("X.O.X..O.")
		require.NoError(t, err)
		before := board

		bot := NewRandomBot(1)

		for i := 0; i < 100; i++ {
			// When: asking for a move
			move, err := bot.NextMove(&board, entity.Human)

			// Then: the move targets an empty cell and the board is untouched
			require.NoError(t, err)
			assert.Equal(t, entity.EmptyCell, board.At(move))
			assert.Equal(t, before, board)
		}
	})

	t.Run("Same seed, same moves", func(t *testing.T) {
		var board entity.Board
		first, second := NewRandomBot(99), NewRandomBot(99)

		for i := 0; i < 20; i++ {
			a, err := first.NextMove(&board, entity.Human)
			require.NoError(t, err)
			b, err := second.NextMove(&board, entity.Human)
			require.NoError(t, err)

			assert.Equal(t, a, b)
		}
	})

	t.Run("Full board", func(t *testing.T) {
		board, err := entity.ParseBoard("OXOOXXXOX")
		require.NoError(t, err)

		_, err = NewRandomBot(1).NextMove(&board, entity.Human)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestPerfectBot_NextMove(t *testing.T) {
	t.Run("Human side takes the win", func(t *testing.T) {
		// Given: the human can complete the top row
		board, err := entity.ParseBoard("XX.OO...X")
		require.NoError(t, err)

		// When: the perfect bot plays for the human
		move, err := NewPerfectBot(search.New()).NextMove(&board, entity.Human)

		// Then: it completes the row
		require.NoError(t, err)
		assert.Equal(t, entity.Coordinate{Row: 0, Col: 2}, move)
	})

	t.Run("Full board", func(t *testing.T) {
		board, err := entity.ParseBoard("OXOOXXXOX")
		require.NoError(t, err)

		_, err = NewPerfectBot(search.New()).NextMove(&board, entity.Human)

		assert.ErrorIs(t, err, apperror.ErrNoAvailableMoves)
	})
}

func TestNewBot(t *testing.T) {
	searcher := search.New()

	bot, err := NewBot(OpponentPerfect, searcher, 0)
	require.NoError(t, err)
	assert.IsType(t, &perfectBot{}, bot)

	bot, err = NewBot(OpponentRandom, searcher, 0)
	require.NoError(t, err)
	assert.IsType(t, &randomBot{}, bot)

	_, err = NewBot("clairvoyant", searcher, 0)
	assert.ErrorIs(t, err, ErrUnknownOpponent)
}
