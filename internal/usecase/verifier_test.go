package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-console/mocks/usecase"
)

func TestVerifier_Positions(t *testing.T) {
	// When: enumerating positions
	positions := NewVerifier(newTestLogger()).Positions()

	// Then: each one is unfinished, unique and has the machine to move
	require.NotEmpty(t, positions)

	seen := make(map[entity.Board]struct{}, len(positions))
	for i := range positions {
		board := positions[i]

		_, finished := tictactoe.Outcome(&board)
		require.False(t, finished, board.String())
		require.Equal(t, entity.Machine, board.SideToMove(), board.String())

		_, duplicate := seen[board]
		require.False(t, duplicate, board.String())
		seen[board] = struct{}{}
	}

	// every opening move is there
	for i := 0; i < entity.CellsCount; i++ {
		var board entity.Board
		board[i] = entity.HumanCell
		assert.Contains(t, seen, board)
	}
}

func TestVerifier_Verify(t *testing.T) {
	t.Run("Pruning agrees on every reachable position", func(t *testing.T) {
		// Given: all reachable positions and a progress tracker
		verifier := NewVerifier(newTestLogger())
		positions := verifier.Positions()

		mockProgress := mockedUseCase.NewMockprogressDep(t)
		mockProgress.EXPECT().
			Add(1).
			Return(nil).
			Times(len(positions))

		// When: verifying
		report, err := verifier.Verify(context.Background(), positions, mockProgress)

		// Then: no mismatch is found and pruning saved work
		require.NoError(t, err)
		assert.True(t, report.OK())
		assert.Empty(t, report.Mismatches)
		assert.Equal(t, len(positions), report.Positions)
		assert.Less(t, report.PrunedNodes, report.UnprunedNodes)
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		// Given: a canceled context
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		verifier := NewVerifier(newTestLogger())
		mockProgress := mockedUseCase.NewMockprogressDep(t)

		// When: verifying
		report, err := verifier.Verify(ctx, verifier.Positions(), mockProgress)

		// Then: nothing is searched
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, report.Positions)
		mockProgress.AssertNotCalled(t, "Add", mock.Anything)
	})
}
