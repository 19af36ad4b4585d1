package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// MakeTurn places the player's mark and advances the game. The game is left untouched on error.
func MakeTurn(gameInstance *entity.Game, player entity.Player, coord entity.Coordinate) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	if err := validateMove(gameInstance, player, coord); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	gameInstance.Board.Set(coord, player.Mark())
	gameInstance.Moves++
	updateGameStatus(gameInstance, player)

	return nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, player entity.Player, coord entity.Coordinate) error {
	if !coord.IsValid() {
		return fmt.Errorf("%w: %s", apperror.ErrOutOfRange, coord)
	}

	if gameInstance.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if gameInstance.Board.At(coord) != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, player entity.Player) {
	if winner, finished := Outcome(&gameInstance.Board); finished {
		gameInstance.Finish(winner)
		return
	}

	gameInstance.Turn = player.Opponent()
}
