package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"dmgsim/internal/config"
	"dmgsim/internal/sim"
	"dmgsim/internal/store/migrations"
)

// beginner is the part of *pgxpool.Pool the store needs.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store persists simulation tables to PostgreSQL.
type Store struct {
	db    beginner
	close func()
}

// Open connects to PostgreSQL and returns a Store.
func Open(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{db: pool, close: pool.Close}, nil
}

func newStore(db beginner) *Store {
	return &Store{db: db, close: func() {}}
}

func (s *Store) Close() {
	s.close()
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

var roundColumns = []string{"run_id", "source", "scenario", "level", "round", "total_damage"}

// SaveRun stores one full simulation in a single transaction and returns the
// run id.
func (s *Store) SaveRun(ctx context.Context, t sim.Tables) (int64, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var runID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO sim_runs (scenario_a, scenario_b, config_a, config_b)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		t.Scenarios[0].Name, t.Scenarios[1].Name, overrides(t.Scenarios[0]), overrides(t.Scenarios[1]),
	).Scan(&runID)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	for _, r := range t.Skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO skill_damage (run_id, source, scenario, level, damage, breakdowns, cooldown, total)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			runID, string(r.Adventurer), r.Scenario, r.Level, r.Damage, r.Breakdowns, r.Cooldown, r.Total,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting skill row %s/%s/%d: %w", r.Adventurer, r.Scenario, r.Level, err)
		}
	}

	rounds := t.Rounds
	n, err := tx.CopyFrom(ctx, pgx.Identifier{"round_damage"}, roundColumns,
		pgx.CopyFromSlice(len(rounds), func(i int) ([]any, error) {
			r := rounds[i]
			return []any{runID, string(r.Adventurer), r.Scenario, r.Level, r.Round, r.TotalDamage}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("copying round rows: %w", err)
	}
	if n != int64(len(rounds)) {
		return 0, fmt.Errorf("copying round rows: wrote %d of %d", n, len(rounds))
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

func overrides(s config.Scenario) map[string]float64 {
	if s.Values == nil {
		return map[string]float64{}
	}
	return s.Values
}
