// Package logging configures the process-wide zerolog logger.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"productranking/internal/config"
)

// Init configures zerolog's global level and writer from cfg, and installs
// the result as the package-level logger every other package logs through.
func Init(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writer zerolog.ConsoleWriter
	if cfg.IsDevelopment() {
		writer = zerolog.ConsoleWriter{Out: os.Stderr}
	} else {
		writer = zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
}
