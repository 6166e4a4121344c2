package synthlog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging surface synthesis stages write progress and
// timing information to.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, err error, fields map[string]any)
}

// zlog adapts zerolog.Logger to Logger.
type zlog struct {
	l zerolog.Logger
}

// New builds a Logger that writes human-readable, colorized output to w.
func New(w io.Writer) Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	l := zerolog.New(console).With().Timestamp().Logger()
	return zlog{l: l}
}

// NewJSON builds a Logger that writes structured JSON lines to w, suited
// for piping into log aggregation rather than reading on a terminal.
func NewJSON(w io.Writer) Logger {
	l := zerolog.New(w).With().Timestamp().Logger()
	return zlog{l: l}
}

// Default returns a console Logger writing to stderr.
func Default() Logger {
	return New(os.Stderr)
}

func withFields(e *zerolog.Event, fields map[string]any) *zerolog.Event {
	if len(fields) == 0 {
		return e
	}
	return e.Fields(fields)
}

func (z zlog) Debug(msg string, fields map[string]any) {
	withFields(z.l.Debug(), fields).Msg(msg)
}

func (z zlog) Info(msg string, fields map[string]any) {
	withFields(z.l.Info(), fields).Msg(msg)
}

func (z zlog) Warn(msg string, fields map[string]any) {
	withFields(z.l.Warn(), fields).Msg(msg)
}

func (z zlog) Error(msg string, err error, fields map[string]any) {
	withFields(z.l.Error().Err(err), fields).Msg(msg)
}

// noop discards everything; used where a Logger is required but output is
// unwanted (most tests).
type noop struct{}

// Noop returns a Logger that discards all output.
func Noop() Logger { return noop{} }

func (noop) Debug(string, map[string]any)            {}
func (noop) Info(string, map[string]any)              {}
func (noop) Warn(string, map[string]any)              {}
func (noop) Error(string, error, map[string]any)      {}
