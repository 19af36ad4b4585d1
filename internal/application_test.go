package application

import (
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
)

func plainConfig() *config.Config {
	return &config.Config{LogLevel: "warn", NoColor: true}
}

func TestRunApp_Play(t *testing.T) {
	t.Run("Full game from typed input", func(t *testing.T) {
		// Given: a human typing three moves, one of them with a typo first
		_, s := suite.New(t)
		streams := Streams{In: s.Input("0 0", "0 x", "0 1", "1 0"), Out: s.Out, Err: s.ErrOut}

		// When: running the default command
		err := RunApp(s.Logger, plainConfig(), nil, streams)

		// Then: the game is printed from welcome to the machine win
		require.NoError(t, err)

		out := s.Out.String()
		assert.True(t, strings.HasPrefix(out, usecase.MessageWelcome+"\n"))
		assert.Contains(t, out, "Invalid input: enter row and column as two integers separated by a space. Try again.\n")
		assert.Equal(t, 3, strings.Count(out, usecase.MessageMachinePlays))
		assert.True(t, strings.HasSuffix(out, "O |   |  \n---------\n"+usecase.MessageMachineWins+"\n"))
	})

	t.Run("Very long line is rejected and asked again", func(t *testing.T) {
		// Given: a line too long for a default scanner before the winning-for-machine moves
		_, s := suite.New(t)
		streams := Streams{In: s.Input(strings.Repeat("9", 70000), "0 0", "0 1", "1 0"), Out: s.Out, Err: s.ErrOut}

		// When: playing
		err := RunApp(s.Logger, plainConfig(), []string{CommandPlay}, streams)

		// Then: the line is reported as invalid input and the game still ends normally
		require.NoError(t, err)

		out := s.Out.String()
		assert.Equal(t, 1, strings.Count(out, "Invalid input: enter row and column as two integers separated by a space. Try again.\n"))
		assert.True(t, strings.HasSuffix(out, usecase.MessageMachineWins+"\n"))
	})

	t.Run("Closed input ends the game with an error", func(t *testing.T) {
		_, s := suite.New(t)
		streams := Streams{In: s.Input("1 1"), Out: s.Out, Err: s.ErrOut}

		err := RunApp(s.Logger, plainConfig(), []string{CommandPlay}, streams)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.Contains(t, s.Out.String(), usecase.MessageMachinePlays)
	})
}

func TestRunApp_Analyze(t *testing.T) {
	t.Run("JSON report", func(t *testing.T) {
		// Given: a position with the machine to move
		_, s := suite.New(t)
		streams := Streams{In: s.Input(), Out: s.Out, Err: s.ErrOut}

		// When: analyzing it as JSON
		err := RunApp(s.Logger, plainConfig(), []string{CommandAnalyze, "-json", "X.XOXXOO."}, streams)

		// Then: the winning move is reported
		require.NoError(t, err)

		var report usecase.Report
		require.NoError(t, sonic.Unmarshal(s.Out.Bytes(), &report))
		require.NotNil(t, report.BestMove)
		assert.Equal(t, entity.Coordinate{Row: 2, Col: 2}, *report.BestMove)
		assert.Equal(t, 1, report.Value)
		assert.True(t, report.Agree)
	})

	t.Run("Text report", func(t *testing.T) {
		_, s := suite.New(t)
		streams := Streams{In: s.Input(), Out: s.Out, Err: s.ErrOut}

		err := RunApp(s.Logger, plainConfig(), []string{CommandAnalyze, "....O.XX."}, streams)

		require.NoError(t, err)
		assert.Contains(t, s.Out.String(), "best move:    (2,2)\n")
	})

	t.Run("Bad arguments", func(t *testing.T) {
		_, s := suite.New(t)
		streams := Streams{In: s.Input(), Out: s.Out, Err: s.ErrOut}

		err := RunApp(s.Logger, plainConfig(), []string{CommandAnalyze}, streams)
		require.ErrorIs(t, err, ErrMissingBoard)

		err = RunApp(s.Logger, plainConfig(), []string{CommandAnalyze, "XO"}, streams)
		require.ErrorIs(t, err, entity.ErrInvalidBoard)

		err = RunApp(s.Logger, plainConfig(), []string{CommandAnalyze, "OO......."}, streams)
		require.ErrorIs(t, err, entity.ErrInvalidBoard)
	})
}

func TestRunApp_Verify(t *testing.T) {
	// Given: plain output
	_, s := suite.New(t)
	streams := Streams{In: s.Input(), Out: s.Out, Err: s.ErrOut}

	// When: verifying every position
	err := RunApp(s.Logger, plainConfig(), []string{CommandVerify}, streams)

	// Then: no disagreement and the progress went to the error stream
	require.NoError(t, err)
	assert.Contains(t, s.Out.String(), "mismatches: 0\n")
	assert.Contains(t, s.ErrOut.String(), "verifying")
}

func TestRunApp_SelfPlay(t *testing.T) {
	t.Run("Random opponent", func(t *testing.T) {
		_, s := suite.New(t)
		streams := Streams{In: s.Input(), Out: s.Out, Err: s.ErrOut}

		err := RunApp(s.Logger, plainConfig(), []string{CommandSelfPlay, "-games", "5", "-opponent", "random", "-seed", "3", "-json"}, streams)

		require.NoError(t, err)

		var report usecase.SelfPlayReport
		require.NoError(t, sonic.Unmarshal(s.Out.Bytes(), &report))
		assert.Equal(t, 5, report.Games)
		assert.Zero(t, report.HumanWins)
	})

	t.Run("Unpruned perfect opponent", func(t *testing.T) {
		_, s := suite.New(t)
		streams := Streams{In: s.Input(), Out: s.Out, Err: s.ErrOut}

		conf := plainConfig()
		conf.NoPruning = true

		err := RunApp(s.Logger, conf, []string{CommandSelfPlay, "-games", "1"}, streams)

		require.NoError(t, err)
		assert.Equal(t, "games: 1, machine wins: 0, human wins: 0, draws: 1\n", s.Out.String())
	})

	t.Run("Bad arguments", func(t *testing.T) {
		_, s := suite.New(t)
		streams := Streams{In: s.Input(), Out: s.Out, Err: s.ErrOut}

		err := RunApp(s.Logger, plainConfig(), []string{CommandSelfPlay, "-opponent", "oracle"}, streams)
		require.ErrorIs(t, err, service.ErrUnknownOpponent)

		err = RunApp(s.Logger, plainConfig(), []string{CommandSelfPlay, "-games", "0"}, streams)
		require.ErrorIs(t, err, ErrInvalidGames)
	})
}

func TestRunApp_UnknownCommand(t *testing.T) {
	_, s := suite.New(t)
	streams := Streams{In: s.Input(), Out: s.Out, Err: s.ErrOut}

	err := RunApp(s.Logger, plainConfig(), []string{"serve"}, streams)

	require.ErrorIs(t, err, ErrUnknownCommand)
}
