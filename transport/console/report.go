package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
)

// WriteJSON encodes v on a single line.
func WriteJSON(out io.Writer, v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	data = append(data, '\n')
	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

func WriteAnalysis(out io.Writer, report *usecase.Report) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "board:        %s\n", report.Board)
	fmt.Fprintf(&sb, "side to move: %s\n", report.SideToMove)

	if report.Finished {
		fmt.Fprintf(&sb, "finished:     %s\n", report.Winner)
		fmt.Fprintf(&sb, "value:        %+d\n", report.Value)
	} else {
		fmt.Fprintf(&sb, "best move:    %s\n", report.BestMove)
		fmt.Fprintf(&sb, "value:        %+d\n", report.Value)
		fmt.Fprintf(&sb, "pruned:       %d nodes, depth %d\n", report.Pruned.Nodes, report.Pruned.MaxDepth)
		fmt.Fprintf(&sb, "unpruned:     %d nodes, depth %d\n", report.Unpruned.Nodes, report.Unpruned.MaxDepth)
		fmt.Fprintf(&sb, "agree:        %t\n", report.Agree)
	}

	if _, err := io.WriteString(out, sb.String()); err != nil {
		return fmt.Errorf("failed to write analysis: %w", err)
	}

	return nil
}

func WriteVerification(out io.Writer, report *usecase.VerifyReport) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "positions:  %d\n", report.Positions)
	fmt.Fprintf(&sb, "nodes:      %d pruned, %d unpruned\n", report.PrunedNodes, report.UnprunedNodes)
	fmt.Fprintf(&sb, "mismatches: %d\n", len(report.Mismatches))

	for _, mismatch := range report.Mismatches {
		fmt.Fprintf(&sb, "  %s: pruned %s %+d, unpruned %s %+d\n",
			mismatch.Board,
			mismatch.Pruned.Move, mismatch.Pruned.Value,
			mismatch.Unpruned.Move, mismatch.Unpruned.Value,
		)
	}

	if _, err := io.WriteString(out, sb.String()); err != nil {
		return fmt.Errorf("failed to write verification: %w", err)
	}

	return nil
}

func WriteSelfPlay(out io.Writer, report *usecase.SelfPlayReport) error {
	_, err := fmt.Fprintf(out, "games: %d, machine wins: %d, human wins: %d, draws: %d\n",
		report.Games, report.MachineWins, report.HumanWins, report.Draws)
	if err != nil {
		return fmt.Errorf("failed to write self play: %w", err)
	}

	return nil
}
