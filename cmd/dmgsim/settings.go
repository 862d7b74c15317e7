package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Settings configures one dmgsim run. Flags override the environment.
type Settings struct {
	Scenarios string `env:"DMGSIM_SCENARIOS"`
	Out       string `env:"DMGSIM_OUT"       envDefault:"out.json"`
	Format    string `env:"DMGSIM_FORMAT"    envDefault:"json"`
	LogLevel  string `env:"DMGSIM_LOG_LEVEL" envDefault:"info"`
	Compare   bool   `env:"DMGSIM_COMPARE"   envDefault:"true"`
	DSN       string `env:"DMGSIM_DATABASE_DSN"`
	Persist   bool   `env:"DMGSIM_PERSIST"`
}

func ParseSettings(fs *flag.FlagSet, args []string) (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&s.Scenarios, "scenarios", s.Scenarios, "scenario YAML file (empty: base config on both sides)")
	fs.StringVar(&s.Out, "out", s.Out, "output file, - for stdout")
	fs.StringVar(&s.Format, "format", s.Format, "output format: json or yaml")
	fs.StringVar(&s.LogLevel, "log-level", s.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&s.Compare, "compare", s.Compare, "include per-level scenario comparison")
	fs.StringVar(&s.DSN, "db", s.DSN, "PostgreSQL DSN used with -persist")
	fs.BoolVar(&s.Persist, "persist", s.Persist, "store the run in PostgreSQL")
	if err := fs.Parse(args); err != nil {
		return Settings{}, err
	}
	if s.Persist && s.DSN == "" {
		return Settings{}, fmt.Errorf("-persist requires -db or DMGSIM_DATABASE_DSN")
	}
	return s, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
