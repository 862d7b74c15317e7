package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"dmgsim/internal/adventurer"
	"dmgsim/internal/config"
	"dmgsim/internal/sim"
	"dmgsim/internal/store"
)

// Report is what dmgsim writes to its output.
type Report struct {
	sim.Tables `yaml:",inline"`
	Comparison map[adventurer.ID][]sim.ComparisonRow `json:"comparison,omitempty" yaml:"comparison,omitempty"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := ParseSettings(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(s.LogLevel),
	})))

	if err := run(ctx, s, os.Stdout); err != nil {
		slog.Error("dmgsim failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, s Settings, stdout io.Writer) error {
	a, b, err := scenarios(s.Scenarios)
	if err != nil {
		return err
	}

	tables, err := sim.RunFull(ctx, a, b)
	if err != nil {
		return err
	}

	if err := write(s, stdout, buildReport(tables, s.Compare)); err != nil {
		return err
	}

	if s.Persist {
		id, err := persist(ctx, s.DSN, tables)
		if err != nil {
			return err
		}
		slog.Info("run stored", "run_id", id)
	}
	return nil
}

func scenarios(path string) (config.Scenario, config.Scenario, error) {
	if path == "" {
		return config.Scenario{Name: "base"}, config.Scenario{Name: "base"}, nil
	}
	return config.LoadScenarios(path)
}

func buildReport(t sim.Tables, compare bool) Report {
	r := Report{Tables: t}
	if !compare {
		return r
	}
	r.Comparison = map[adventurer.ID][]sim.ComparisonRow{}
	for _, k := range adventurer.All() {
		r.Comparison[k.ID()] = sim.Compare(t, k.ID())
	}
	return r
}

func write(s Settings, stdout io.Writer, r Report) error {
	if s.Out == "-" {
		return sim.Encode(stdout, s.Format, r)
	}
	f, err := os.Create(s.Out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", s.Out, err)
	}
	if err := sim.Encode(f, s.Format, r); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("report written", "path", s.Out, "format", s.Format)
	return nil
}

func persist(ctx context.Context, dsn string, t sim.Tables) (int64, error) {
	if err := store.RunMigrations(ctx, dsn); err != nil {
		return 0, err
	}
	st, err := store.Open(ctx, dsn)
	if err != nil {
		return 0, err
	}
	defer st.Close()
	return st.SaveRun(ctx, t)
}
