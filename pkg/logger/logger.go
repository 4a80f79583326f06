package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger. Development environments get
// console output at debug level; everything else logs JSON.
func Init(env, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var out io.Writer = os.Stdout
	if env == "dev" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	if env == "dev" && lvl > zerolog.DebugLevel {
		lvl = zerolog.DebugLevel
	}

	l := zerolog.New(out).With().Timestamp().Logger().Level(lvl)
	log.Logger = l
	return l
}
