package suite

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"testing"
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Output *bytes.Buffer
}

func New(t *testing.T) *Suite {
	t.Helper()

	// debug level so that every logging branch is exercised
	logger := slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return &Suite{
		T:      t,
		Logger: logger,
		Output: &bytes.Buffer{},
	}
}

// Input - returns a reader that yields every line followed by a newline.
func (that *Suite) Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// OutputLines - returns what has been written so far, split into lines.
func (that *Suite) OutputLines() []string {
	out := strings.TrimSuffix(that.Output.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
