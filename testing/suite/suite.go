package suite

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 30 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Out:    &bytes.Buffer{},
		ErrOut: &bytes.Buffer{},
	}
}

// Input joins lines the way a user would type them.
func (that *Suite) Input(lines ...string) *strings.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
