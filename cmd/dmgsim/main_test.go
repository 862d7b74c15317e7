package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmgsim/internal/adventurer"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("dmgsim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := ParseSettings(newFlagSet(), nil)
		require.NoError(t, err)
		assert.Equal(t, "out.json", s.Out)
		assert.Equal(t, "json", s.Format)
		assert.Equal(t, "info", s.LogLevel)
		assert.True(t, s.Compare)
		assert.False(t, s.Persist)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("DMGSIM_FORMAT", "yaml")
		t.Setenv("DMGSIM_SCENARIOS", "a.yaml")
		s, err := ParseSettings(newFlagSet(), nil)
		require.NoError(t, err)
		assert.Equal(t, "yaml", s.Format)
		assert.Equal(t, "a.yaml", s.Scenarios)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("DMGSIM_OUT", "env.json")
		s, err := ParseSettings(newFlagSet(), []string{"-out", "-", "-compare=false"})
		require.NoError(t, err)
		assert.Equal(t, "-", s.Out)
		assert.False(t, s.Compare)
	})

	t.Run("persist without dsn", func(t *testing.T) {
		_, err := ParseSettings(newFlagSet(), []string{"-persist"})
		assert.Error(t, err)
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.in))
		})
	}
}

func TestRunToStdout(t *testing.T) {
	var buf bytes.Buffer
	err := run(context.Background(), Settings{Out: "-", Format: "json", Compare: true}, &buf)
	require.NoError(t, err)

	var got struct {
		Skills     []adventurer.Result         `json:"skills"`
		Comparison map[string][]map[string]any `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.NotEmpty(t, got.Skills)
	assert.Len(t, got.Comparison, len(adventurer.All()))
}

func TestRunScenarioFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`scenarios:
  - name: baseline
    values: {}
  - name: more crit
    values:
      Crit_DMG_pct: 600
`), 0o644))
	out := filepath.Join(dir, "out.yaml")

	err := run(context.Background(), Settings{Scenarios: path, Out: out, Format: "yaml"}, io.Discard)
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(b), "name: more crit")
}

func TestRunRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`scenarios:
  - name: typo
    values:
      Crit_DMG: 600
`), 0o644))

	err := run(context.Background(), Settings{Scenarios: path, Out: "-"}, io.Discard)
	assert.Error(t, err)
}
