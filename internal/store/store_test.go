package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmgsim/internal/adventurer"
	"dmgsim/internal/config"
	"dmgsim/internal/sim"
	"dmgsim/internal/store/migrations"
)

type fakeRow struct{ id int64 }

func (r fakeRow) Scan(dest ...any) error {
	*(dest[0].(*int64)) = r.id
	return nil
}

type fakeTx struct {
	pgx.Tx

	runArgs    []any
	skillArgs  [][]any
	copied     [][]any
	copyTable  pgx.Identifier
	execErr    error
	shortCopy  bool
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	tx.runArgs = args
	return fakeRow{id: 42}
}

func (tx *fakeTx) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	if tx.execErr != nil {
		return pgconn.CommandTag{}, tx.execErr
	}
	tx.skillArgs = append(tx.skillArgs, args)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (tx *fakeTx) CopyFrom(_ context.Context, table pgx.Identifier, _ []string, src pgx.CopyFromSource) (int64, error) {
	tx.copyTable = table
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			return 0, err
		}
		tx.copied = append(tx.copied, vals)
	}
	n := int64(len(tx.copied))
	if tx.shortCopy {
		n--
	}
	return n, src.Err()
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if !tx.committed {
		tx.rolledBack = true
	}
	return nil
}

type fakeDB struct{ tx *fakeTx }

func (db fakeDB) Begin(context.Context) (pgx.Tx, error) { return db.tx, nil }

func sampleTables() sim.Tables {
	return sim.Tables{
		Scenarios: [2]config.Scenario{
			{Name: "a", Values: map[string]float64{config.CritDmgPct: 500}},
			{Name: "b", Values: map[string]float64{config.CritDmgPct: 600}},
		},
		Skills: []adventurer.Result{
			{Adventurer: adventurer.GagarinID, Scenario: sim.LabelA, Level: 0, Total: 10},
			{Adventurer: adventurer.GagarinID, Scenario: sim.LabelB, Level: 0, Total: 12},
		},
		Rounds: []adventurer.RoundRecord{
			{Adventurer: adventurer.GagarinID, Scenario: sim.LabelA, Level: 0, Round: 1, TotalDamage: 10},
			{Adventurer: adventurer.GagarinID, Scenario: sim.LabelA, Level: 0, Round: 2, TotalDamage: 20},
			{Adventurer: adventurer.GagarinID, Scenario: sim.LabelB, Level: 0, Round: 1, TotalDamage: 12},
		},
	}
}

func TestSaveRun(t *testing.T) {
	tx := &fakeTx{}
	s := newStore(fakeDB{tx: tx})
	defer s.Close()

	id, err := s.SaveRun(context.Background(), sampleTables())
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	require.Len(t, tx.runArgs, 4)
	assert.Equal(t, "a", tx.runArgs[0])
	assert.Equal(t, "b", tx.runArgs[1])

	require.Len(t, tx.skillArgs, 2)
	assert.Equal(t, int64(42), tx.skillArgs[0][0])
	assert.Equal(t, "gagarin", tx.skillArgs[0][1])
	assert.Equal(t, sim.LabelB, tx.skillArgs[1][2])

	assert.Equal(t, pgx.Identifier{"round_damage"}, tx.copyTable)
	require.Len(t, tx.copied, 3)
	assert.Equal(t, []any{int64(42), "gagarin", sim.LabelA, 0, 2, 20.0}, tx.copied[1])

	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestSaveRunRollsBack(t *testing.T) {
	tests := []struct {
		name string
		tx   *fakeTx
	}{
		{"exec fails", &fakeTx{execErr: errors.New("boom")}},
		{"short copy", &fakeTx{shortCopy: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newStore(fakeDB{tx: tt.tx}).SaveRun(context.Background(), sampleTables())
			require.Error(t, err)
			assert.False(t, tt.tx.committed)
			assert.True(t, tt.tx.rolledBack)
		})
	}
}

func TestMigrationsEmbedded(t *testing.T) {
	b, err := migrations.FS.ReadFile("00001_init.sql")
	require.NoError(t, err)
	assert.Contains(t, string(b), "-- +goose Up")
	assert.Contains(t, string(b), "CREATE TABLE round_damage")
}
