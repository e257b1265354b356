package loggers

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the zerolog logger used across the service.
type Logger = zerolog.Logger

func init() {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
}

// New returns a JSON logger on stdout at level, e.g. "info" or "debug".
func New(level string) (Logger, error) {
	return NewWithWriter(level, os.Stdout)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(level string, w io.Writer) (Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Caller().Logger(), nil
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return zerolog.Nop()
}

// Component derives a logger tagged with the component name (http, job, seeder).
func Component(logger Logger, name string) Logger {
	return logger.With().Str(FieldComponent, name).Logger()
}

// Ctx returns the logger stored in ctx, or a disabled one.
var Ctx = func(ctx context.Context) *Logger {
	return zerolog.Ctx(ctx)
}
