package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Logger at construction time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger is a thin zerolog wrapper scoped to pipeline runs. A nil *Logger is
// valid and discards everything, so callers never have to guard log calls.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from Options. The zero Options value yields an
// info-level JSON logger on stderr.
func New(opts Options) (*Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		console := zerolog.NewConsoleWriter()
		console.Out = out
		console.TimeFormat = time.RFC3339
		out = console
	}

	base := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{base: base}, nil
}

// WithRun returns a logger that stamps every entry with the run identifier.
func (l *Logger) WithRun(runID string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str("run", runID).Logger()}
}

// WithStage returns a logger that stamps every entry with the stage id.
func (l *Logger) WithStage(stageID string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str("stage", stageID).Logger()}
}

// WithFields returns a logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{base: ctx.Logger()}
}

// Debug writes a debug-level entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Info writes an informational entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Warn writes a warning entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error entry with the supplied error attached.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	l.base.Error().Err(err).Msg(msg)
}
