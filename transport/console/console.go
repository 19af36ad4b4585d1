package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/logrusorgru/aurora"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	PromptMove = "Enter your move (row and column: 0-2): "

	cellSeparator = " | "
	rowDivider    = "---------"
)

type line struct {
	text string
	err  error
}

// Console reads moves from in and prints the game to out.
type Console struct {
	logger *slog.Logger
	out    io.Writer
	paint  aurora.Aurora

	reader *bufio.Reader
	lines  chan line
	done   chan struct{}
	start  sync.Once
	stop   sync.Once
}

func New(logger *slog.Logger, in io.Reader, out io.Writer, colored bool) *Console {
	return &Console{
		logger: logger.With("component", "console"),
		out:    out,
		paint:  aurora.NewAurora(colored),

		reader: bufio.NewReader(in),
		lines:  make(chan line),
		done:   make(chan struct{}),
	}
}

// ReadMove prompts for a move and waits for a line or for ctx to be done.
func (that *Console) ReadMove(ctx context.Context) (entity.Coordinate, error) {
	if _, err := io.WriteString(that.out, PromptMove); err != nil {
		return entity.Coordinate{}, fmt.Errorf("failed to write prompt: %w", err)
	}

	that.start.Do(that.readLines)

	select {
	case <-ctx.Done():
		return entity.Coordinate{}, ctx.Err()
	case next, ok := <-that.lines:
		if !ok {
			return entity.Coordinate{}, apperror.ErrInputClosed
		}

		if next.err != nil {
			return entity.Coordinate{}, fmt.Errorf("failed to read input: %w", next.err)
		}

		return ParseMove(next.text)
	}
}

// readLines reads in on its own goroutine so that ReadMove can give up on cancellation.
// Lines of any length are delivered whole, an overlong line is just malformed input.
func (that *Console) readLines() {
	go func() {
		defer close(that.lines)

		for {
			select {
			case <-that.done:
				return
			default:
			}

			text, err := that.reader.ReadString('\n')
			if text != "" && !that.send(line{text: strings.TrimRight(text, "\r\n")}) {
				return
			}

			if errors.Is(err, io.EOF) {
				return
			}

			if err != nil {
				that.logger.Error("failed to read input", "error", err)
				that.send(line{err: err})

				return
			}
		}
	}()
}

// send hands a line to ReadMove unless the console is closed first.
func (that *Console) send(next line) bool {
	select {
	case that.lines <- next:
		return true
	case <-that.done:
		return false
	}
}

// Close releases the reading goroutine. One blocked on in exits as soon as that read returns.
func (that *Console) Close() error {
	that.stop.Do(func() {
		close(that.done)
	})

	return nil
}

// RenderBoard prints three rows of cells, each followed by a divider.
func (that *Console) RenderBoard(board entity.Board) error {
	var sb strings.Builder

	cells := make([]string, entity.BoardSize)
	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			cells[col] = that.symbol(board.At(entity.Coordinate{Row: row, Col: col}))
		}

		sb.WriteString(strings.Join(cells, cellSeparator))
		sb.WriteByte('\n')
		sb.WriteString(rowDivider)
		sb.WriteByte('\n')
	}

	if _, err := io.WriteString(that.out, sb.String()); err != nil {
		return fmt.Errorf("failed to render board: %w", err)
	}

	return nil
}

func (that *Console) Notify(message string) error {
	if _, err := fmt.Fprintln(that.out, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Console) symbol(cell entity.Cell) string {
	switch cell {
	case entity.HumanCell:
		return that.paint.Red(cell.String()).String()
	case entity.MachineCell:
		return that.paint.Cyan(cell.String()).String()
	default:
		return cell.String()
	}
}

// ParseMove reads "row col" from a line.
func ParseMove(text string) (entity.Coordinate, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return entity.Coordinate{}, fmt.Errorf("%w: expected row and column, got %q", apperror.ErrInvalidInput, text)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: row %q is not a number", apperror.ErrInvalidInput, fields[0])
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: column %q is not a number", apperror.ErrInvalidInput, fields[1])
	}

	coord, err := entity.NewCoordinate(row, col)
	if err != nil {
		return entity.Coordinate{}, fmt.Errorf("%w: %w", apperror.ErrOutOfRange, err)
	}

	return coord, nil
}
