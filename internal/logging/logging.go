// Package logging builds the zerolog logger used to trace each step of a move.
//
// Tracing is off by default so that a successful move prints nothing. The level
// is taken, in increasing order of precedence, from the SMB2MV_LOG_LEVEL
// environment variable, the --verbose flag and the --log-level flag.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Environment variable consulted when no level was given on the command line
const LevelEnv = "SMB2MV_LOG_LEVEL"

// Level used when nothing else was requested
const DefaultLevel = zerolog.WarnLevel

// Resolves the effective log level. An explicit level wins over verbose, which wins over the environment.
func ResolveLevel(explicit string, verbose bool) (zerolog.Level, error) {
	if explicit != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(explicit))
		if err != nil {
			return zerolog.NoLevel, fmt.Errorf("invalid log level %q", explicit)
		}
		return level, nil
	}
	if verbose {
		return zerolog.DebugLevel, nil
	}

	// An unparseable environment value falls back to the default rather than failing the move
	if env := os.Getenv(LevelEnv); env != "" {
		if level, err := zerolog.ParseLevel(strings.ToLower(env)); err == nil {
			return level, nil
		}
	}
	return DefaultLevel, nil
}

// Creates a console logger writing to w at the specified level
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:     w,
		NoColor: !isTerminal(w),
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
