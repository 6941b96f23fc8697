package report

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds a console-rendered zerolog.Logger with caller
// information attached, the same construction the rest of this module's
// ambient stack uses for long-running CLI/worker processes.
func NewLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Caller().Logger()
}
