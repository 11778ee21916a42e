package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"autorepair/auth"
	"autorepair/config"
	"autorepair/dashboard"
	"autorepair/navigator"
	"autorepair/screens"
	"autorepair/store"
)

func main() {
	cfg := config.Load()
	log := newLogger(cfg)

	db, err := config.Open(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open record store")
	}

	st := store.New(db, store.PlainVerifier{})
	if err := st.Seed(); err != nil {
		log.Fatal().Err(err).Msg("seeding record store failed")
	}

	gate := auth.NewGate(st)
	nav := navigator.New(gate, log)
	screens.RegisterAll(nav, st, gate, cfg.LogoPath)

	sh := newShell(nav, st, gate, dashboard.New(st), cfg, log, os.Stdin, os.Stdout)
	sh.run()
}

// newLogger builds the process logger: readable console output in
// development, JSON elsewhere.
func newLogger(cfg config.Config) zerolog.Logger {
	var w io.Writer = os.Stderr
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
