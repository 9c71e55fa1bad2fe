package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rodrigoquadros/barber-agenda/internal/config"
)

// New monta o logger da aplicação: console legível em development,
// JSON no resto. Também redireciona o logger global do zerolog.
func New(cfg *config.Config) *zerolog.Logger {
	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err == nil {
		level = parsed
	}

	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("app", "barber-agenda").
		Logger()

	log.Logger = logger

	return &logger
}
