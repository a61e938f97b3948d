package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/config"
)

// New monta o logger zerolog a partir da configuração. Formato "console"
// para desenvolvimento, JSON caso contrário; nível inválido cai em info.
func New(cfg *config.Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err == nil {
		level = parsed
	}

	var out = zerolog.New(os.Stdout)
	if strings.EqualFold(cfg.LogFormat, "console") {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return out.
		Level(level).
		With().
		Timestamp().
		Str("app", "barber-booking").
		Logger()
}
